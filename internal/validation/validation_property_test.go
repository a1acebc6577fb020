package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// A submission is accepted exactly when every trimmed field length is
// within its bounds, independent of the other fields' values
func TestProperty_AnnouncementAcceptanceMatchesBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	inBounds := func(s string, max int) bool {
		n := len([]rune(strings.TrimSpace(s)))
		return n >= 1 && n <= max
	}

	properties.Property("acceptance iff all trimmed bounds hold", prop.ForAll(
		func(author, title, text string) bool {
			fields, err := ValidateAnnouncement(author, title, text)
			want := inBounds(author, AuthorMaxLen) &&
				inBounds(title, TitleMaxLen) &&
				inBounds(text, AnnouncementTextMaxLen)

			if want {
				return err == nil && fields != nil
			}
			return err != nil && fields == nil
		},
		genFieldString(120),
		genFieldString(120),
		genFieldString(1100),
	))

	properties.TestingRun(t)
}

// Accepted values come back trimmed and within bounds
func TestProperty_AcceptedAnnouncementIsNormalized(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("accepted fields are trimmed", prop.ForAll(
		func(author, title, text string) bool {
			fields, err := ValidateAnnouncement(author, title, text)
			if err != nil {
				// Rejection carries no normalized record
				return fields == nil
			}
			return fields.Author == strings.TrimSpace(fields.Author) &&
				fields.Title == strings.TrimSpace(fields.Title) &&
				fields.Text == strings.TrimSpace(fields.Text) &&
				len([]rune(fields.Author)) <= AuthorMaxLen &&
				len([]rune(fields.Title)) <= TitleMaxLen &&
				len([]rune(fields.Text)) <= AnnouncementTextMaxLen
		},
		genFieldString(120),
		genFieldString(120),
		genFieldString(1100),
	))

	properties.TestingRun(t)
}

// Comment field acceptance mirrors the announcement rule with the
// tighter 200-character text bound
func TestProperty_CommentAcceptanceMatchesBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	inBounds := func(s string, max int) bool {
		n := len([]rune(strings.TrimSpace(s)))
		return n >= 1 && n <= max
	}

	properties.Property("acceptance iff both trimmed bounds hold", prop.ForAll(
		func(author, text string) bool {
			fields, err := ValidateComment(author, text)
			want := inBounds(author, AuthorMaxLen) && inBounds(text, CommentTextMaxLen)

			if want {
				return err == nil && fields != nil
			}
			return err != nil && fields == nil
		},
		genFieldString(120),
		genFieldString(250),
	))

	properties.TestingRun(t)
}

// genFieldString generates strings from empty up to maxLen characters,
// padded with occasional surrounding whitespace so trimming is exercised
func genFieldString(maxLen int) gopter.Gen {
	return gen.IntRange(0, maxLen).FlatMap(func(v interface{}) gopter.Gen {
		n := v.(int)
		return gen.SliceOfN(n, gen.RuneNoControl()).Map(func(runes []rune) string {
			return " " + string(runes) + " "
		})
	}, reflect.TypeOf(""))
}
