package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListContainsElement(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		element  string
		list     []string
		expected bool
	}{
		{"", []string{}, false},
		{"foo", []string{}, false},
		{"foo", []string{"foo"}, true},
		{"foo", []string{"bar", "foo", "baz"}, true},
		{"nope", []string{"bar", "foo", "baz"}, false},
		{"", []string{"bar", "foo", "baz"}, false},
	}

	for _, testCase := range testCases {
		actual := ListContainsElement(testCase.list, testCase.element)
		assert.Equal(t, testCase.expected, actual, "For list %v and element %s", testCase.list, testCase.element)
	}
}
