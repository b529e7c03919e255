package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// WordLength is the length of every puzzle word.
const WordLength = 5

// ErrNoWords is returned when a word list contains no usable words.
var ErrNoWords = errors.New("wordlist: no five-letter words")

// fallback is used when no word file is available.
var fallback = []string{
	"ABOUT", "ABOVE", "ABUSE", "ACTOR", "ACUTE", "ADMIT", "ADOPT", "ADULT", "AFTER",
	"AGAIN", "AGENT", "AGREE", "AHEAD", "ALARM", "ALBUM", "ALERT", "ALIKE", "ALIVE",
	"ALLOW", "ALONE", "ALONG", "ALTER", "ANGER", "APPLE", "APPLY", "ARENA", "AVOID",
	"BASIC", "BEACH", "BEGAN", "BEING", "BELLS", "BENCH", "BLACK", "BLANK", "BOARD",
	"BOOKS", "BRAIN", "BRAVE", "BREAD", "BREAK", "BRING", "BUILD", "CHAIR", "CHALK",
	"CHARM", "CHASE", "CHEAP", "CHECK", "CHEST", "CHIEF", "CHILD", "CLAIM", "CLASS",
	"CLEAN", "CLEAR", "CLIMB", "CLOCK", "CLOSE", "COACH", "COULD", "COUNT", "COVER",
	"CREAM", "CRIME", "DANCE", "DEATH", "DELAY", "DREAM", "DRESS", "DRINK", "DRIVE",
	"EARTH", "EIGHT", "EMPTY", "ENJOY", "ENTER", "EQUAL", "ERROR", "ESSAY", "EVENT",
	"EXACT", "FAITH", "FALSE", "FIELD", "FIGHT", "FINAL", "FIRST", "FLASH", "FOCUS",
	"FORCE", "FOUND", "FRAME", "FRESH", "FRUIT", "GIVEN", "GLASS", "GOING", "GRACE",
	"GRADE", "GRAND", "GRANT", "GRASS", "GREAT", "GREEN", "GROUP", "GUARD", "GUESS",
	"GUEST", "GUIDE", "HAPPY", "HEART", "HEAVY", "HORSE", "HOTEL", "HOUSE", "HUMAN",
	"IMAGE", "JAPAN", "JUDGE", "KNOWN", "LARGE", "LASER", "LATER", "LAUGH", "LEARN",
	"LEAST", "LEAVE", "LEGAL", "LEVEL", "LIGHT", "LIMIT", "LINKS", "LIVED", "LOCAL",
	"LOGIC", "LOWER", "LUCKY", "LUNCH", "MAGIC", "MAJOR", "MARCH", "MARKS", "MATCH",
	"MAYBE", "MAYOR", "MEANT", "MEDIA", "METAL", "MIGHT", "MINOR", "MIXED", "MODEL",
	"MONEY", "MONTH", "MORAL", "MOTOR", "MOUNT", "MOVED", "MOVIE", "MUSIC", "NEVER",
	"NEWLY", "NIGHT", "NOISE", "NORTH", "NOTED", "NOTES", "NOVEL", "NURSE", "OCCUR",
	"OCEAN", "OFFER", "OFTEN", "ORDER", "OTHER", "OUGHT", "OWNED", "OWNER", "PAINT",
	"PANEL", "PAPER", "PARTY", "PEACE", "PHASE", "PHONE", "PHOTO", "PIECE", "PILOT",
	"PLACE", "PLAIN", "PLANE", "PLANT", "PLATE", "POINT", "POUND", "POWER", "PRESS",
	"PRICE", "PRIDE", "PRIME", "PRINT", "PRIOR", "PROOF", "PROUD", "PROVE", "PUPIL",
	"QUEEN", "QUICK", "QUIET", "QUITE", "RADIO", "RAISE", "RANGE", "RAPID", "REACH",
	"READY", "RIGHT", "RIVER", "ROUGH", "ROUND", "ROUTE", "ROYAL", "RULER", "RURAL",
	"SCALE", "SCENE", "SCOPE", "SCORE", "SENSE", "SERVE", "SEVEN", "SHALL", "SHAPE",
	"SHARE", "SHARP", "SHEET", "SHIFT", "SHINE", "SHIRT", "SHOOT", "SHORT", "SHOWN",
	"SIGHT", "SINCE", "SIXTH", "SIZED", "SKILL", "SLEEP", "SLIDE", "SMALL", "SMART",
	"SMILE", "SMOKE", "SOLID", "SOLVE", "SORRY", "SOUND", "SOUTH", "SPACE", "SPARE",
	"SPEAK", "SPEED", "SPEND", "SPENT", "SPLIT", "SPORT", "STAFF", "STAGE", "STAND",
	"START", "STATE", "STEAM", "STEEL", "STILL", "STOCK", "STONE", "STORE", "STORM",
	"STORY", "STUCK", "STUDY", "STUFF", "STYLE", "SUGAR", "SWEET", "TABLE", "TAKEN",
	"TEACH", "TERMS", "TEXAS", "THANK", "THEIR", "THEME", "THERE", "THESE", "THICK",
	"THING", "THINK", "THIRD", "THOSE", "THREE", "THROW", "TIGHT", "TIMES", "TIRED",
	"TITLE", "TODAY", "TOPIC", "TOTAL", "TOUCH", "TOUGH", "TOWER", "TRACK", "TRADE",
	"TRAIN", "TREAT", "TRIAL", "TRIED", "TRUCK", "TRULY", "TRUST", "TRUTH", "TUTOR",
	"TWICE", "UNCLE", "UNDER", "UNION", "UNITY", "UNTIL", "UPPER", "URBAN", "USUAL",
	"VALID", "VALUE", "VIDEO", "VISIT", "VITAL", "VOICE", "WASTE", "WATCH", "WATER",
	"WHEEL", "WHERE", "WHICH", "WHILE", "WHITE", "WHOLE", "WOMAN", "WORLD", "WORRY",
	"WORSE", "WORST", "WORTH", "WOULD", "WRITE", "WRONG", "YIELD", "YOUNG", "YOUTH",
}

// Fallback returns a copy of the built-in corpus.
func Fallback() []string {
	return slices.Clone(fallback)
}

// Read parses one word per line. Words are upper-cased; lines that are not
// five letters are skipped and duplicates dropped.
func Read(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := Normalize(strings.TrimSpace(sc.Text()))
		if !valid(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

// Load reads the word file at path. A missing file yields the fallback
// corpus and a nil error; fromFile reports which one was used.
func Load(path string) (words []string, fromFile bool, err error) {
	if path == "" {
		return Fallback(), false, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Fallback(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("wordlist: open %q: %w", path, err)
	}
	defer f.Close()

	words, err = Read(f)
	if err != nil {
		return nil, false, fmt.Errorf("wordlist: %q: %w", path, err)
	}
	return words, true, nil
}

// PickRandom returns one word chosen with r.
func PickRandom(r *rand.Rand, words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[r.IntN(len(words))]
}

// Contains reports whether the normalized word is in words.
func Contains(words []string, word string) bool {
	return slices.Contains(words, Normalize(word))
}

// Suggest returns the closest word in the list by Jaro-Winkler similarity,
// or "" when nothing scores above 0.8.
func Suggest(words []string, word string) string {
	word = Normalize(word)
	best, bestScore := "", 0.8
	for _, w := range words {
		if s := matchr.JaroWinkler(word, w, false); s > bestScore {
			best, bestScore = w, s
		}
	}
	return best
}

// IsWord reports whether s is WordLength letters.
func IsWord(s string) bool {
	return valid(Normalize(s))
}

func valid(w string) bool {
	n := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n == WordLength
}
