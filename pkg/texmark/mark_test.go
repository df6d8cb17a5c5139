package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkKindNameMatchesClosedVocabulary(t *testing.T) {
	cases := map[MarkKind]string{
		MarkTitle:                   "title",
		MarkSectionStar:             "section*",
		MarkSubsubsectionStar:       "subsubsection*",
		MarkChapterStar:             "chapter*",
		MarkIncludeGraphicsOptional: "includegraphics-optional",
		MarkOuterDisplayMath:        "outer-display-math",
		MarkEnumerateItem:           "enumerate-item",
		MarkCrefCapital:             "Cref",
		MarkCref:                    "cref",
		MarkListing:                 "listing",
	}

	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestMarkKindNameIsUnknownPastClosedSet(t *testing.T) {
	assert.Equal(t, "unknown", MarkKind(255).String())
}
