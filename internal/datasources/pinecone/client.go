package pinecone

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

var _ datasources.VectorStore = (*Client)(nil)

// quotesNamespace holds every quote vector; one record per quote ID.
const quotesNamespace = "quotes"

// negativeSignalWeight down-weights disliked quotes when building the
// recommendation search vector.
const negativeSignalWeight = 0.3

type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for quotes: %w", err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: quotesNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func (c *Client) UpsertQuote(ctx context.Context, quote domain.Quote, vector []float32) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer closeConn(idxConn)

	metadata, err := quoteMetadata(quote)
	if err != nil {
		return err
	}

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       strconv.Itoa(quote.ID),
		Values:   vector,
		Metadata: metadata,
	}})
	if err != nil {
		return fmt.Errorf("upserting quote [%d]: %w", quote.ID, err)
	}

	return nil
}

func (c *Client) FindNearestQuote(
	ctx context.Context, vector []float32, scoreFloor float32,
) (*domain.ScoredQuote, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer closeConn(idxConn)

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            1,
		MetadataFilter:  nil,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying nearest quote: %w", err)
	}

	if len(resp.Matches) == 0 || resp.Matches[0].Score < scoreFloor {
		return nil, nil
	}

	match := resp.Matches[0]
	quote, err := quoteFromVector(match.Vector)
	if err != nil {
		return nil, err
	}

	return &domain.ScoredQuote{Quote: quote, Score: float64(match.Score)}, nil
}

func (c *Client) FindQuoteByAuthor(
	ctx context.Context, vector []float32, author string,
) (*domain.Quote, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer closeConn(idxConn)

	filter, err := structpb.NewStruct(map[string]any{
		"author": map[string]any{"$eq": author},
	})
	if err != nil {
		return nil, fmt.Errorf("creating author filter: %w", err)
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            1,
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying quotes by author [%s]: %w", author, err)
	}

	if len(resp.Matches) == 0 {
		return nil, nil
	}

	quote, err := quoteFromVector(resp.Matches[0].Vector)
	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (c *Client) SearchQuotesByVector(
	ctx context.Context, vector []float32, filters domain.QuoteFilters, limit int,
) ([]domain.ScoredQuote, error) {
	if limit > 10000 {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer closeConn(idxConn)

	filter, err := searchFilter(filters)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("searching quotes: %w", err)
	}

	return scoredQuotesFromMatches(resp.Matches)
}

func (c *Client) FetchQuotesByID(ctx context.Context, ids []int) ([]domain.Quote, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer closeConn(idxConn)

	vectors, err := c.fetchVectors(ctx, idxConn, ids)
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(vectors))
	for _, id := range ids {
		vector, ok := vectors[strconv.Itoa(id)]
		if !ok {
			continue
		}
		quote, err := quoteFromVector(vector)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func (c *Client) ScrollQuotes(
	ctx context.Context, cursor string, limit int,
) ([]domain.Quote, string, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, "", err
	}
	defer closeConn(idxConn)

	pageLimit := uint32(limit)
	var paginationToken *string
	if cursor != "" {
		paginationToken = &cursor
	}

	listResp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
		Prefix:          nil,
		Limit:           &pageLimit,
		PaginationToken: paginationToken,
	})
	if err != nil {
		return nil, "", fmt.Errorf("listing quote vector IDs: %w", err)
	}

	var vectorIDs []string
	for _, id := range listResp.VectorIds {
		vectorIDs = append(vectorIDs, *id)
	}

	var page []domain.Quote
	if len(vectorIDs) > 0 {
		fetchResp, err := idxConn.FetchVectors(ctx, vectorIDs)
		if err != nil {
			return nil, "", fmt.Errorf("fetching quote payloads: %w", err)
		}

		for _, vector := range fetchResp.Vectors {
			quote, err := quoteFromVector(vector)
			if err != nil {
				return nil, "", err
			}
			page = append(page, quote)
		}
	}

	nextCursor := ""
	if listResp.NextPaginationToken != nil {
		nextCursor = *listResp.NextPaginationToken
	}

	return page, nextCursor, nil
}

func (c *Client) ScrollLikingUsers(
	ctx context.Context, cursor string, limit int,
) ([]domain.QuoteLikes, string, error) {
	quotes, nextCursor, err := c.ScrollQuotes(ctx, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	var page []domain.QuoteLikes
	for _, quote := range quotes {
		if len(quote.LikingUsers) == 0 {
			continue
		}
		page = append(page, domain.QuoteLikes{
			QuoteID: quote.ID,
			Users:   quote.LikingUsers,
		})
	}

	return page, nextCursor, nil
}

// RecommendQuotes queries with one search vector built from the user's
// rated quotes: the average of liked vectors minus the down-weighted
// average of disliked vectors. Every rated quote is excluded from the
// results.
func (c *Client) RecommendQuotes(
	ctx context.Context, positives, negatives []int, limit int,
) ([]domain.ScoredQuote, error) {
	if len(positives) == 0 {
		return nil, nil
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer closeConn(idxConn)

	positiveVectors, err := c.fetchVectorValues(ctx, idxConn, positives)
	if err != nil {
		return nil, err
	}
	if len(positiveVectors) == 0 {
		return nil, nil
	}

	negativeVectors, err := c.fetchVectorValues(ctx, idxConn, negatives)
	if err != nil {
		return nil, err
	}

	searchVector := averageVectors(positiveVectors)
	if negativeAvg := averageVectors(negativeVectors); negativeAvg != nil {
		for i := range searchVector {
			searchVector[i] -= negativeSignalWeight * negativeAvg[i]
		}
	}

	filter, err := ratedQuotesExclusionFilter(positives, negatives)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          searchVector,
		TopK:            uint32(limit),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying recommendations: %w", err)
	}

	return scoredQuotesFromMatches(resp.Matches)
}

func (c *Client) fetchVectors(
	ctx context.Context, idxConn *pinecone.IndexConnection, ids []int,
) (map[string]*pinecone.Vector, error) {
	vectorIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		vectorIDs = append(vectorIDs, strconv.Itoa(id))
	}

	resp, err := idxConn.FetchVectors(ctx, vectorIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors: %w", err)
	}

	return resp.Vectors, nil
}

func (c *Client) fetchVectorValues(
	ctx context.Context, idxConn *pinecone.IndexConnection, ids []int,
) ([][]float32, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	vectors, err := c.fetchVectors(ctx, idxConn, ids)
	if err != nil {
		return nil, err
	}

	var values [][]float32
	for _, vector := range vectors {
		values = append(values, vector.Values)
	}

	return values, nil
}

func searchFilter(filters domain.QuoteFilters) (*pinecone.MetadataFilter, error) {
	conditions := map[string]any{}
	if len(filters.Tags) > 0 {
		var tags []any
		for _, tag := range filters.Tags {
			tags = append(tags, tag)
		}
		conditions["tags"] = map[string]any{"$in": tags}
	}
	if filters.Author != "" {
		conditions["author"] = map[string]any{"$eq": filters.Author}
	}
	if len(conditions) == 0 {
		return nil, nil
	}

	filter, err := structpb.NewStruct(conditions)
	if err != nil {
		return nil, fmt.Errorf("creating search filter: %w", err)
	}
	return filter, nil
}

func ratedQuotesExclusionFilter(positives, negatives []int) (*pinecone.MetadataFilter, error) {
	var excluded []any
	for _, id := range positives {
		excluded = append(excluded, id)
	}
	for _, id := range negatives {
		excluded = append(excluded, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"quote_id": map[string]any{
			"$nin": excluded,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating exclusion filter: %w", err)
	}
	return filter, nil
}

func quoteMetadata(quote domain.Quote) (*structpb.Struct, error) {
	tags := make([]any, 0, len(quote.Tags))
	for _, tag := range quote.Tags {
		tags = append(tags, tag)
	}

	metadata := map[string]any{
		"quote_id": quote.ID,
		"text":     quote.Text,
		"author":   quote.Author,
		"tags":     tags,
	}
	if quote.AvatarImg != "" {
		metadata["avatar_img"] = quote.AvatarImg
	}
	if len(quote.LikingUsers) > 0 {
		var likingUsers []any
		for _, user := range quote.LikingUsers {
			likingUsers = append(likingUsers, map[string]any{
				"user_id":   user.UserID,
				"user_name": user.UserName,
			})
		}
		metadata["liking_users"] = likingUsers
	}

	structMetadata, err := structpb.NewStruct(metadata)
	if err != nil {
		return nil, fmt.Errorf("creating quote metadata: %w", err)
	}
	return structMetadata, nil
}

func quoteFromVector(vector *pinecone.Vector) (domain.Quote, error) {
	if vector == nil || vector.Metadata == nil {
		return domain.Quote{}, fmt.Errorf("vector has no metadata")
	}

	fields := vector.Metadata.AsMap()

	quote := domain.Quote{}
	quoteID, ok := fields["quote_id"].(float64)
	if !ok {
		return domain.Quote{}, fmt.Errorf("vector [%s] metadata has no numeric quote_id", vector.Id)
	}
	quote.ID = int(quoteID)

	quote.Text, _ = fields["text"].(string)
	quote.Author, _ = fields["author"].(string)
	quote.AvatarImg, _ = fields["avatar_img"].(string)

	if tags, ok := fields["tags"].([]any); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				quote.Tags = append(quote.Tags, s)
			}
		}
	}

	if likingUsers, ok := fields["liking_users"].([]any); ok {
		for _, entry := range likingUsers {
			user, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			ref := domain.LikingUserRef{}
			ref.UserID, _ = user["user_id"].(string)
			ref.UserName, _ = user["user_name"].(string)
			quote.LikingUsers = append(quote.LikingUsers, ref)
		}
	}

	return quote, nil
}

func scoredQuotesFromMatches(matches []*pinecone.ScoredVector) ([]domain.ScoredQuote, error) {
	var results []domain.ScoredQuote
	for _, match := range matches {
		quote, err := quoteFromVector(match.Vector)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.ScoredQuote{
			Quote: quote,
			Score: float64(match.Score),
		})
	}
	return results, nil
}

func closeConn(idxConn *pinecone.IndexConnection) {
	if closeErr := idxConn.Close(); closeErr != nil {
		_ = closeErr
	}
}

func averageVectors(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	result := make([]float32, len(vectors[0]))
	for _, vector := range vectors {
		for i, v := range vector {
			result[i] += v
		}
	}

	for i := range result {
		result[i] /= float32(len(vectors))
	}

	return result
}
