package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"agenthub-backend/internal/config"
	"agenthub-backend/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedClient   *dynamodb.Client
	sharedConfig   *config.Config
)

// BaseTestSuite wires a suite to the shared DynamoDB Local container.
type BaseTestSuite struct {
	suite.Suite
	Client   *dynamodb.Client
	Store    *repository.Repository
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite initializes (once) the shared DynamoDB Local container and
// returns a per-suite wrapper. Call this in your tests before using the store.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedDynamoContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		Client:   sharedClient,
		Store:    repository.NewRepository(sharedClient, sharedConfig.DynamoDBTable),
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run
// ends. This is automatically called by TestMain in main_test.go
func CleanupSharedContainer() {
	log.Println("Starting Docker container cleanup...")
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		} else {
			log.Println("Successfully purged Docker container")
		}
		sharedResource = nil
		sharedPool = nil
		sharedClient = nil
	}
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestTable() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestTable() }

// CleanTestTable removes every item from the shared table. The container
// persists across suites for speed; only the data is reset.
func (s *BaseTestSuite) CleanTestTable() {
	if s.Client == nil {
		return
	}
	ctx := context.Background()
	table := s.Config.DynamoDBTable

	var startKey map[string]types.AttributeValue
	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(table),
			ProjectionExpression: aws.String("PK, SK"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			log.Printf("WARN: could not scan table for cleanup: %v", err)
			return
		}
		for _, item := range out.Items {
			_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(table),
				Key: map[string]types.AttributeValue{
					"PK": item["PK"],
					"SK": item["SK"],
				},
			})
			if err != nil {
				log.Printf("WARN: could not delete item during cleanup: %v", err)
			}
		}
		if out.LastEvaluatedKey == nil {
			return
		}
		startKey = out.LastEvaluatedKey
	}
}

// ------------------------------
// Shared DynamoDB Local container init
// ------------------------------

func initSharedDynamoContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "amazon/dynamodb-local",
		Tag:        "latest",
		Cmd:        []string{"-jar", "DynamoDBLocal.jar", "-inMemory", "-sharedDb"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start dynamodb-local: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("8000/tcp")
	endpoint := fmt.Sprintf("http://127.0.0.1:%s", hostPort)

	cfg := &config.Config{
		Environment:      "test",
		Port:             "8080",
		LogLevel:         "debug",
		BaseURL:          "http://localhost:3000",
		AWSRegion:        "us-east-1",
		DynamoDBTable:    "agenthub-test",
		DynamoDBEndpoint: endpoint,
		AWSAccessKeyID:   "test",
		AWSSecretKey:     "test",
		JWTSecret:        "test-secret",
		InviteTTLHours:   168,
	}

	ctx := context.Background()
	client, err := repository.NewClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("could not create store client: %w", err)
	}

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		createCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return repository.EnsureTable(createCtx, client, cfg.DynamoDBTable)
	}); err != nil {
		return fmt.Errorf("could not connect to dynamodb-local: %w", err)
	}

	sharedClient = client
	sharedConfig = cfg
	log.Printf("Shared DynamoDB Local ready on %s", hostPort)
	return nil
}
