package figma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/internal/figma"
)

func TestParseFileRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		ref     string
		wantKey string
		wantIDs []string
	}{
		{
			name:    "bare key",
			ref:     "AbC123xyz",
			wantKey: "AbC123xyz",
		},
		{
			name:    "file url",
			ref:     "https://www.figma.com/file/AbC123xyz/My-Project",
			wantKey: "AbC123xyz",
		},
		{
			name:    "design url",
			ref:     "https://www.figma.com/design/AbC123xyz/My-Project",
			wantKey: "AbC123xyz",
		},
		{
			name:    "proto url",
			ref:     "https://www.figma.com/proto/AbC123xyz/Flow",
			wantKey: "AbC123xyz",
		},
		{
			name:    "board url",
			ref:     "https://www.figma.com/board/AbC123xyz/Whiteboard",
			wantKey: "AbC123xyz",
		},
		{
			name:    "node id translated",
			ref:     "https://www.figma.com/design/AbC123xyz/My-Project?node-id=12-345",
			wantKey: "AbC123xyz",
			wantIDs: []string{"12:345"},
		},
		{
			name:    "multiple node ids",
			ref:     "https://www.figma.com/file/AbC123xyz/P?node-id=1-2&node-id=3-4",
			wantKey: "AbC123xyz",
			wantIDs: []string{"1:2", "3:4"},
		},
		{
			name:    "surrounding whitespace",
			ref:     "  AbC123xyz  ",
			wantKey: "AbC123xyz",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, ids, err := figma.ParseFileRef(tc.ref)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, key)
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestParseFileRef_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ref  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"url without marker", "https://www.figma.com/community/plugin/123"},
		{"marker without key", "https://www.figma.com/file/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := figma.ParseFileRef(tc.ref)
			require.Error(t, err)
			assert.ErrorIs(t, err, figma.ErrBadFileRef)
		})
	}
}
