package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnnouncement(t *testing.T) {
	tests := []struct {
		name      string
		author    string
		title     string
		text      string
		wantErr   bool
		wantField string
	}{
		{
			name:   "accepts minimal fields",
			author: "Al",
			title:  "Hi",
			text:   "ok",
		},
		{
			name:    "rejects empty author",
			author:  "",
			title:   "Hi",
			text:    "ok",
			wantErr: true, wantField: "author",
		},
		{
			name:    "rejects whitespace-only author",
			author:  "   ",
			title:   "Hi",
			text:    "ok",
			wantErr: true, wantField: "author",
		},
		{
			name:    "rejects empty title",
			author:  "Al",
			title:   "",
			text:    "ok",
			wantErr: true, wantField: "title",
		},
		{
			name:    "rejects empty text",
			author:  "Al",
			title:   "Hi",
			text:    "",
			wantErr: true, wantField: "text",
		},
		{
			name:   "accepts author of exactly 100 characters",
			author: strings.Repeat("a", 100),
			title:  "Hi",
			text:   "ok",
		},
		{
			name:    "rejects author of 101 characters",
			author:  strings.Repeat("a", 101),
			title:   "Hi",
			text:    "ok",
			wantErr: true, wantField: "author",
		},
		{
			name:   "accepts title of exactly 100 characters",
			author: "Al",
			title:  strings.Repeat("t", 100),
			text:   "ok",
		},
		{
			name:    "rejects title of 101 characters",
			author:  "Al",
			title:   strings.Repeat("t", 101),
			text:    "ok",
			wantErr: true, wantField: "title",
		},
		{
			name:   "accepts text of exactly 1000 characters",
			author: "Al",
			title:  "Hi",
			text:   strings.Repeat("x", 1000),
		},
		{
			name:    "rejects text of 1001 characters",
			author:  "Al",
			title:   "Hi",
			text:    strings.Repeat("x", 1001),
			wantErr: true, wantField: "text",
		},
		{
			name:   "length is measured after trimming",
			author: "  " + strings.Repeat("a", 100) + "  ",
			title:  "Hi",
			text:   "ok",
		},
		{
			name:   "counts characters not bytes",
			author: strings.Repeat("я", 100),
			title:  "Hi",
			text:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ValidateAnnouncement(tt.author, tt.title, tt.text)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, fields)

				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, fields)
			assert.Equal(t, strings.TrimSpace(tt.author), fields.Author)
			assert.Equal(t, strings.TrimSpace(tt.title), fields.Title)
			assert.Equal(t, strings.TrimSpace(tt.text), fields.Text)
		})
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name      string
		author    string
		text      string
		wantErr   bool
		wantField string
	}{
		{
			name:   "accepts minimal fields",
			author: "Bo",
			text:   "nice",
		},
		{
			name:    "rejects empty author",
			author:  "",
			text:    "nice",
			wantErr: true, wantField: "author",
		},
		{
			name:    "rejects empty text",
			author:  "Bo",
			text:    "",
			wantErr: true, wantField: "text",
		},
		{
			name:   "accepts text of exactly 200 characters",
			author: "Bo",
			text:   strings.Repeat("c", 200),
		},
		{
			name:    "rejects text of 201 characters",
			author:  "Bo",
			text:    strings.Repeat("c", 201),
			wantErr: true, wantField: "text",
		},
		{
			name:   "trims surrounding whitespace",
			author: "  Bo  ",
			text:   "  nice  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ValidateComment(tt.author, tt.text)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, fields)

				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, fields)
			assert.Equal(t, strings.TrimSpace(tt.author), fields.Author)
			assert.Equal(t, strings.TrimSpace(tt.text), fields.Text)
		})
	}
}

func TestFieldError_Error(t *testing.T) {
	err := &FieldError{Field: "title", Min: 1, Max: 100, Len: 101}
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "1-100")
}
