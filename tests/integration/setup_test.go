package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/sergavdalyan/ledger-service/internal/adapter/http"
	"github.com/sergavdalyan/ledger-service/internal/adapter/http/handler"
	"github.com/sergavdalyan/ledger-service/internal/adapter/repository/postgres"
	redisrepo "github.com/sergavdalyan/ledger-service/internal/adapter/repository/redis"
	infraredis "github.com/sergavdalyan/ledger-service/internal/infrastructure/redis"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
	"github.com/sergavdalyan/ledger-service/tests/testutil"
)

type testEnv struct {
	db     *testutil.TestDB
	redis  *redislib.Client
	router http.Handler
}

// newTestEnv wires the full service against real postgres and redis.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	idGen := postgres.NewULIDGenerator()
	accountRepo := postgres.NewAccountRepository(pool, idGen)
	transactionRepo := postgres.NewTransactionRepository(pool, idGen)
	entryRepo := postgres.NewEntryRepository(pool)
	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier(zerolog.Nop())

	accountUC := usecase.NewAccountUseCase(accountRepo, nil)
	transactionUC := usecase.NewTransactionUseCase(txManager, accountRepo, transactionRepo, retrier, nil)
	balanceCalc := usecase.NewBalanceCalculator(entryRepo, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(accountUC, balanceCalc),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   redisrepo.NewIdempotencyStore(redisClient),
	})

	return &testEnv{
		db:     testDB,
		redis:  redisClient,
		router: router,
	}
}
