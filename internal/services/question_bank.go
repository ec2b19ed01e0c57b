package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"interviewprep/api/internal/models"
)

// QuestionBankService keeps every generated interview question in a
// vector collection so later generations for similar job descriptions
// can retrieve them as prompt context.
type QuestionBankService interface {
	InitCollection() error
	StoreQuestions(ctx context.Context, batchID, jobPosition string, embedding []float32, questions []models.GeneratedQuestion) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]BankQuestion, error)
}

type BankQuestion struct {
	BatchID     string
	JobPosition string
	Question    string
	Score       float32
}

type questionBankService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQuestionBankService(urlStr, apiKey, collectionName string) (QuestionBankService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &questionBankService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements QuestionBankService.
func (q *questionBankService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// StoreQuestions implements QuestionBankService. One point per
// question, all sharing the job-description embedding of the batch.
func (q *questionBankService) StoreQuestions(ctx context.Context, batchID, jobPosition string, embedding []float32, questions []models.GeneratedQuestion) error {
	points := make([]*qdrant.PointStruct, 0, len(questions))
	for _, question := range questions {
		pointID := uuid.New()
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(pointID.ID())),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]interface{}{
				"batch_id":     batchID,
				"job_position": jobPosition,
				"question":     question.Question,
			}),
		})
	}

	if len(points) == 0 {
		return nil
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert questions: %w", err)
	}

	return nil
}

// SearchSimilar implements QuestionBankService.
func (q *questionBankService) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]BankQuestion, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search question bank: %w", err)
	}

	var results []BankQuestion
	for _, point := range searchResult {
		payload := point.Payload

		result := BankQuestion{Score: point.Score}

		if batchID, ok := payload["batch_id"]; ok {
			if val, ok := batchID.GetKind().(*qdrant.Value_StringValue); ok {
				result.BatchID = val.StringValue
			}
		}
		if position, ok := payload["job_position"]; ok {
			if val, ok := position.GetKind().(*qdrant.Value_StringValue); ok {
				result.JobPosition = val.StringValue
			}
		}
		if question, ok := payload["question"]; ok {
			if val, ok := question.GetKind().(*qdrant.Value_StringValue); ok {
				result.Question = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}
