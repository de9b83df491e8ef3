package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dropOrderNotifier discards status change events.
type dropOrderNotifier struct{}

func (dropOrderNotifier) NotifyStatusChanged(context.Context, ports.OrderStatusChangedEvent) error {
	return nil
}

// rendezvousUoWFactory wraps the real unit of work factory so that every
// handler in the test loads the order before any of them writes. Each Get
// waits on the shared barrier, which forces the transactions to overlap and
// makes the optimistic version check the deciding mechanism.
type rendezvousUoWFactory struct {
	inner  ports.UnitOfWorkFactory
	loaded *sync.WaitGroup
}

func (f rendezvousUoWFactory) Create() commands.OrderUoW {
	return rendezvousUoW{UnitOfWork: f.inner.Create(), loaded: f.loaded}
}

type rendezvousUoW struct {
	ports.UnitOfWork
	loaded *sync.WaitGroup
}

func (u rendezvousUoW) OrderRepository() ports.OrderRepository {
	return rendezvousOrderRepository{
		OrderRepository: u.UnitOfWork.OrderRepository(),
		loaded:          u.loaded,
	}
}

type rendezvousOrderRepository struct {
	ports.OrderRepository
	loaded *sync.WaitGroup
}

func (r rendezvousOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	aggregate, err := r.OrderRepository.Get(ctx, id)
	r.loaded.Done()
	r.loaded.Wait()
	return aggregate, err
}

// StatusChangeRaceIntegrationTestSuite drives two concurrent status change
// requests through the full gateway stack against a real PostgreSQL database
// and verifies that the optimistic version check lets exactly one win.
type StatusChangeRaceIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *StatusChangeRaceIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.ItemModifierDTO{},
		&orderrepo.StatusChangeDTO{},
	))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *StatusChangeRaceIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_item_modifiers, order_status_changes").Error)
}

func (suite *StatusChangeRaceIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StatusChangeRaceIntegrationTestSuite) TestConcurrentTransitions_OneWinsOneConflicts() {
	ctx := context.Background()

	testOrder := createTestOrder()
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(seed.Commit(ctx))

	loaded := &sync.WaitGroup{}
	loaded.Add(2)

	handler := commands.NewChangeOrderStatusCommandHandler(
		rendezvousUoWFactory{inner: suite.factory, loaded: loaded},
		services.NewTransitionAuthority(),
		dropOrderNotifier{},
		time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	confirm, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Confirmed, order.Staff, "")
	suite.Require().NoError(err)
	cancel, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Cancelled, order.Customer, "")
	suite.Require().NoError(err)

	type outcome struct {
		next order.Status
		err  error
	}
	outcomes := make(chan outcome, 2)

	for _, cmd := range []commands.ChangeOrderStatusCommand{confirm, cancel} {
		go func(cmd commands.ChangeOrderStatusCommand) {
			next, handleErr := handler.Handle(ctx, cmd)
			outcomes <- outcome{next: next, err: handleErr}
		}(cmd)
	}

	var winners, conflicts int
	var committed order.Status
	for range 2 {
		select {
		case result := <-outcomes:
			if result.err == nil {
				winners++
				committed = result.next
			} else {
				conflicts++
				suite.Require().ErrorIs(result.err, errs.ErrVersionConflict)
			}
		case <-time.After(30 * time.Second):
			suite.FailNow("racing status changes did not finish")
		}
	}

	suite.Equal(1, winners, "exactly one request should win the race")
	suite.Equal(1, conflicts, "the other request should see a version conflict")

	// The durable state must reflect only the winner's transition.
	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	retrieved, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(check.Rollback(ctx))

	suite.Equal(committed, retrieved.Status())
	suite.Require().Len(retrieved.History(), 2)
	suite.Equal(committed, retrieved.History()[1].To())
	suite.Equal(1, retrieved.Version())
}

func TestStatusChangeRaceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StatusChangeRaceIntegrationTestSuite))
}
