package password

import "fmt"

// Alphabet identifies a supported script with fixed lowercase and uppercase
// character sets.
type Alphabet int

const (
	Latin Alphabet = iota
	Cyrillic
)

var alphabetCharsets = map[Alphabet][2]string{
	Latin: {
		"abcdefghijklmnopqrstuvwxyz",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	},
	Cyrillic: {
		"абвгдеёжзийклмнопрстуфхцчшщъыьэюя",
		"АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ",
	},
}

// Lower returns the lowercase characters of the alphabet, or "" for an
// unknown value.
func (a Alphabet) Lower() string {
	return alphabetCharsets[a][0]
}

// Upper returns the uppercase characters of the alphabet, or "" for an
// unknown value.
func (a Alphabet) Upper() string {
	return alphabetCharsets[a][1]
}

func (a Alphabet) String() string {
	switch a {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	default:
		return fmt.Sprintf("alphabet(%d)", int(a))
	}
}

// ParseAlphabet maps a tag such as "latin" or "cyrillic" to its Alphabet.
func ParseAlphabet(s string) (Alphabet, error) {
	switch s {
	case "latin":
		return Latin, nil
	case "cyrillic":
		return Cyrillic, nil
	default:
		return 0, fmt.Errorf("unknown alphabet: %s", s)
	}
}
