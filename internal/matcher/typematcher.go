package matcher

import (
	"io/fs"
	"strings"

	"github.com/gofind-io/gofind/internal/errors"
	"github.com/gofind-io/gofind/util"
)

// fileTypes are the accepted arguments to -type.
var fileTypes = []string{"b", "c", "d", "f", "l", "p", "s"}

// TypeMatcher matches entries of a single file type, identified by the same
// one-letter names the -type flag accepts:
//
//	f  regular file
//	d  directory
//	l  symbolic link
//	p  named pipe (FIFO)
//	s  socket
//	c  character device
//	b  block device
//
// The type comes from the walk's own metadata, so symbolic links are reported
// as links rather than as their targets.
type TypeMatcher struct {
	fileType string
}

// NewTypeMatcher creates a matcher for the given file type letter.
func NewTypeMatcher(fileType string) (*TypeMatcher, error) {
	if !util.ListContainsElement(fileTypes, fileType) {
		return nil, errors.Errorf("invalid file type %q, expected one of: %s", fileType, strings.Join(fileTypes, ", "))
	}

	return &TypeMatcher{fileType: fileType}, nil
}

// Matches implements Matcher.
func (m *TypeMatcher) Matches(entry Entry) bool {
	mode := entry.DirEntry.Type()

	switch m.fileType {
	case "f":
		return mode.IsRegular()
	case "d":
		return mode.IsDir()
	case "l":
		return mode&fs.ModeSymlink != 0
	case "p":
		return mode&fs.ModeNamedPipe != 0
	case "s":
		return mode&fs.ModeSocket != 0
	case "c":
		return mode&fs.ModeCharDevice != 0
	case "b":
		// Block devices set ModeDevice alone, character devices set both.
		return mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0
	default:
		return false
	}
}

// HasSideEffects implements Matcher.
func (m *TypeMatcher) HasSideEffects() bool {
	return false
}
