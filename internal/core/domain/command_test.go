package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandArgs(t *testing.T) {
	type TestCase struct {
		description string
		args        string
		want        string
	}

	testCases := []TestCase{
		{
			description: "should discard first word",
			args:        "/thumb fjord",
			want:        "fjord",
		},
		{
			description: "should only discard first word",
			args:        "/thumb fjord 200 150",
			want:        "fjord 200 150",
		},
		{
			description: "empty on no args",
			args:        "/thumb",
			want:        "",
		},
		{
			description: "empty on no input",
			args:        "",
			want:        "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := ParseCommandArgs(testCase.args)

			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParseCommand(t *testing.T) {
	type TestCase struct {
		description string
		args        string
		want        string
	}

	testCases := []TestCase{
		{
			description: "should return first word",
			args:        "/thumb",
			want:        "/thumb",
		},
		{
			description: "should discard following words",
			args:        "/thumb fjord 200 150",
			want:        "/thumb",
		},
		{
			description: "should lower-case",
			args:        "/THUMB fjord",
			want:        "/thumb",
		},
		{
			description: "should drop bot mention",
			args:        "/help@thumbd_bot",
			want:        "/help",
		},
		{
			description: "empty on no input",
			args:        "",
			want:        "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := ParseCommand(testCase.args)

			assert.Equal(t, testCase.want, got)
		})
	}
}
