package model

import (
	"regexp"
	"strings"
)

// Kind classifies one line of the command list.
type Kind int

const (
	KindGlobal Kind = iota
	KindComment
	KindLastExecuted
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindLastExecuted:
		return "last"
	default:
		return "global"
	}
}

// LastPrefix marks a last-executed placeholder in the persisted form.
const LastPrefix = "Last: "

// lastMarker is what the loader looks for; the trailing space is optional on disk.
const lastMarker = "Last:"

// NoOrdinal is held by comments and by entries that have not been renumbered yet.
const NoOrdinal = -1

var commentRe = regexp.MustCompile(`^\s*#`)

// Entry represents one line in the command list.
type Entry struct {
	Ordinal    int    // Display number; NoOrdinal until renumbered, always NoOrdinal for comments
	Kind       Kind   // Comment, Global or LastExecuted
	SourceFile string // File the entry was loaded from; empty for in-memory placeholders
	Text       string // Raw text; LastExecuted entries keep their "Last: " prefix
}

// List is the ordered, in-memory command list owned by one session.
type List []Entry

// IsComment reports whether a line is a comment (optional whitespace then '#').
func IsComment(line string) bool {
	return commentRe.MatchString(line)
}

// IsLastLine reports whether a persisted line is a last-executed placeholder.
func IsLastLine(line string) bool {
	return strings.Contains(line, lastMarker)
}

// Classify returns the kind a persisted line loads as.
func Classify(line string) Kind {
	switch {
	case IsComment(line):
		return KindComment
	case IsLastLine(line):
		return KindLastExecuted
	default:
		return KindGlobal
	}
}

// NewGlobal returns an unnumbered global command entry.
func NewGlobal(text, sourceFile string) Entry {
	return Entry{Ordinal: NoOrdinal, Kind: KindGlobal, SourceFile: sourceFile, Text: text}
}

// NewLast returns a last-executed placeholder for a raw command.
func NewLast(command string) Entry {
	return Entry{Ordinal: NoOrdinal, Kind: KindLastExecuted, Text: LastPrefix + command}
}

// Command returns the text to execute, without any "Last: " prefix.
func (e Entry) Command() string {
	return StripLast(e.Text)
}

// StripLast removes a leading "Last: " prefix.
func StripLast(text string) string {
	return strings.TrimPrefix(text, LastPrefix)
}
