package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

func TestIngestQuote_Execute_DuplicateSkipped(t *testing.T) {
	testVector := []float32{0.1, 0.2, 0.3}

	embedder := mocks.NewMockEmbedder(t)
	nearest := mocks.NewMockNearestQuoteFinder(t)
	authors := mocks.NewMockAuthorQuoteFinder(t)
	upserter := mocks.NewMockQuoteUpserter(t)

	embedder.EXPECT().
		EmbedText(mock.Anything, "To be or not to be.").
		Return(testVector, nil)
	nearest.EXPECT().
		FindNearestQuote(mock.Anything, testVector, float32(0.9)).
		Return(&domain.ScoredQuote{
			Quote: domain.Quote{ID: 41, Text: "To be, or not to be."},
			Score: 0.95,
		}, nil)

	cmd := NewIngestQuote(embedder, nearest, authors, upserter, domain.TagNormalizer{}, DefaultIngestQuoteConfig())

	action, err := cmd.Execute(testContext(), IngestQuoteRequest{
		Quote: domain.Quote{ID: 99, Text: "To be or not to be.", Author: "William Shakespeare"},
	})
	require.NoError(t, err)
	require.Equal(t, ActionDuplicateSkipped, action)
}

func TestIngestQuote_Execute_AuthorAvatarBackfill(t *testing.T) {
	testVector := []float32{0.4, 0.5}

	cases := []struct {
		name           string
		existing       *domain.Quote
		incomingAvatar string
		wantAction     IngestAction
		wantAvatar     string
	}{
		{
			name:       "avatar_copied_from_existing_entry",
			existing:   &domain.Quote{ID: 7, Author: "Seneca", AvatarImg: "https://img.example/seneca.jpg"},
			wantAction: ActionAuthorMatched,
			wantAvatar: "https://img.example/seneca.jpg",
		},
		{
			name:           "existing_without_avatar_keeps_incoming",
			existing:       &domain.Quote{ID: 7, Author: "Seneca"},
			incomingAvatar: "https://img.example/scraped.jpg",
			wantAction:     ActionAuthorMatched,
			wantAvatar:     "https://img.example/scraped.jpg",
		},
		{
			name:       "no_author_match",
			wantAction: ActionUnmatched,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := mocks.NewMockEmbedder(t)
			nearest := mocks.NewMockNearestQuoteFinder(t)
			authors := mocks.NewMockAuthorQuoteFinder(t)
			upserter := mocks.NewMockQuoteUpserter(t)

			embedder.EXPECT().
				EmbedText(mock.Anything, "Luck is what happens when preparation meets opportunity.").
				Return(testVector, nil)
			nearest.EXPECT().
				FindNearestQuote(mock.Anything, testVector, float32(0.9)).
				Return(nil, nil)
			authors.EXPECT().
				FindQuoteByAuthor(mock.Anything, testVector, "Seneca").
				Return(tc.existing, nil)

			var upserted domain.Quote
			upserter.EXPECT().
				UpsertQuote(mock.Anything, mock.Anything, testVector).
				RunAndReturn(func(_ context.Context, quote domain.Quote, _ []float32) error {
					upserted = quote
					return nil
				})

			cmd := NewIngestQuote(embedder, nearest, authors, upserter, domain.TagNormalizer{}, DefaultIngestQuoteConfig())

			action, err := cmd.Execute(testContext(), IngestQuoteRequest{
				Quote: domain.Quote{
					ID:        100,
					Text:      "Luck is what happens when preparation meets opportunity.",
					Author:    "Seneca",
					AvatarImg: tc.incomingAvatar,
				},
			})
			require.NoError(t, err)
			require.Equal(t, tc.wantAction, action)
			require.Equal(t, tc.wantAvatar, upserted.AvatarImg)
		})
	}
}

func TestIngestQuote_Execute_TagsNormalized(t *testing.T) {
	testVector := []float32{0.6}

	embedder := mocks.NewMockEmbedder(t)
	nearest := mocks.NewMockNearestQuoteFinder(t)
	authors := mocks.NewMockAuthorQuoteFinder(t)
	upserter := mocks.NewMockQuoteUpserter(t)

	embedder.EXPECT().
		EmbedText(mock.Anything, "Stay hungry, stay foolish.").
		Return(testVector, nil)
	nearest.EXPECT().
		FindNearestQuote(mock.Anything, testVector, float32(0.9)).
		Return(nil, nil)
	authors.EXPECT().
		FindQuoteByAuthor(mock.Anything, testVector, "Steve Jobs").
		Return(nil, nil)
	upserter.EXPECT().
		UpsertQuote(mock.Anything, domain.Quote{
			ID:     3,
			Text:   "Stay hungry, stay foolish.",
			Author: "Steve Jobs",
			Tags:   []string{"inspiration", "life"},
		}, testVector).
		Return(nil)

	tags := domain.TagNormalizer{
		"inspirational": "inspiration",
		"motivational":  "inspiration",
	}
	cmd := NewIngestQuote(embedder, nearest, authors, upserter, tags, DefaultIngestQuoteConfig())

	action, err := cmd.Execute(testContext(), IngestQuoteRequest{
		Quote: domain.Quote{
			ID:     3,
			Text:   "Stay hungry, stay foolish.",
			Author: "Steve Jobs",
			Tags:   []string{"inspirational", "motivational", "life"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ActionUnmatched, action)
}

func TestIngestQuote_Execute_UpsertError(t *testing.T) {
	testVector := []float32{0.6}

	embedder := mocks.NewMockEmbedder(t)
	nearest := mocks.NewMockNearestQuoteFinder(t)
	authors := mocks.NewMockAuthorQuoteFinder(t)
	upserter := mocks.NewMockQuoteUpserter(t)

	embedder.EXPECT().
		EmbedText(mock.Anything, "quote text").
		Return(testVector, nil)
	nearest.EXPECT().
		FindNearestQuote(mock.Anything, testVector, float32(0.9)).
		Return(nil, nil)
	authors.EXPECT().
		FindQuoteByAuthor(mock.Anything, testVector, "Unknown").
		Return(nil, nil)
	upserter.EXPECT().
		UpsertQuote(mock.Anything, mock.Anything, testVector).
		Return(errors.New("index unavailable"))

	cmd := NewIngestQuote(embedder, nearest, authors, upserter, domain.TagNormalizer{}, DefaultIngestQuoteConfig())

	_, err := cmd.Execute(testContext(), IngestQuoteRequest{
		Quote: domain.Quote{ID: 4, Text: "quote text", Author: "Unknown"},
	})
	require.ErrorContains(t, err, "index unavailable")
}
