package sampling

import (
	"fmt"
	"strings"
)

// Level is an inspection level from the General/Special family.
type Level string

const (
	LevelI   Level = "I"
	LevelII  Level = "II"
	LevelIII Level = "III"
	LevelS1  Level = "S-1"
	LevelS2  Level = "S-2"
	LevelS3  Level = "S-3"
	LevelS4  Level = "S-4"
)

// CodeLevel is an inspection level from the code-letter family. It is never
// interchangeable with Level.
type CodeLevel string

const (
	CodeLevelGI   CodeLevel = "GI"
	CodeLevelGII  CodeLevel = "GII"
	CodeLevelGIII CodeLevel = "GIII"
)

var Levels = []Level{LevelI, LevelII, LevelIII, LevelS1, LevelS2, LevelS3, LevelS4}

var CodeLevels = []CodeLevel{CodeLevelGI, CodeLevelGII, CodeLevelGIII}

func (l Level) Valid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

func (l Level) Special() bool {
	return strings.HasPrefix(string(l), "S-")
}

func (l CodeLevel) Valid() bool {
	return l.offset() >= 0
}

func (l CodeLevel) offset() int {
	for i, known := range CodeLevels {
		if l == known {
			return i
		}
	}
	return -1
}

func ParseLevel(input string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(input)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q (want one of I, II, III, S-1, S-2, S-3, S-4)", ErrInvalidLevel, input)
	}
	return level, nil
}

func ParseCodeLevel(input string) (CodeLevel, error) {
	level := CodeLevel(strings.ToUpper(strings.TrimSpace(input)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q (want one of GI, GII, GIII)", ErrInvalidLevel, input)
	}
	return level, nil
}
