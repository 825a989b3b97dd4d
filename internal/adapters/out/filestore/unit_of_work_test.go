package filestore_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"restaurant/internal/adapters/out/filestore"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/suite"
)

// UnitOfWorkTestSuite exercises the file unit of work against a temporary directory.
type UnitOfWorkTestSuite struct {
	suite.Suite
	dir           string
	pendingPath   string
	fulfilledPath string
	factory       ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	logger := log.New("test")
	logger.SetOutput(io.Discard)

	suite.dir = suite.T().TempDir()
	suite.pendingPath = filepath.Join(suite.dir, "orders.json")
	suite.fulfilledPath = filepath.Join(suite.dir, "output_orders.json")
	suite.factory = filestore.NewFileUnitOfWorkFactory(suite.pendingPath, suite.fulfilledPath, logger)
}

func (suite *UnitOfWorkTestSuite) newOrder(id string) *order.Order {
	item, err := order.NewLineItem("Bibimbap", 9000, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.MustNewOrderID(id), "Park", []order.LineItem{item})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkTestSuite) seed(path string, orders ...*order.Order) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.PendingOrderRepository()
	if path == suite.fulfilledPath {
		repo = uow.FulfilledOrderRepository()
	}
	suite.Require().NoError(repo.SaveAll(ctx, order.NewList(orders...)))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkTestSuite) read(path string) string {
	data, err := os.ReadFile(path)
	suite.Require().NoError(err)
	return string(data)
}

// TestUnitOfWorkFactory_Create verifies every call yields an independent unit of work.
func (suite *UnitOfWorkTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.PendingOrderRepository())
	suite.NotNil(uow1.FulfilledOrderRepository())
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), filestore.ErrNoActiveTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), filestore.ErrNoActiveTransaction)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_WritesAreInvisibleUntilCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("A1"))))

	suite.NoFileExists(suite.pendingPath)
	staged, err := uow.PendingOrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, staged.Len(), "Reads inside the unit of work see staged writes")

	suite.Require().NoError(uow.Commit(ctx))
	suite.FileExists(suite.pendingPath)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	suite.seed(suite.pendingPath, suite.newOrder("A1"))
	before := suite.read(suite.pendingPath)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, order.NewList()))
	suite.Require().NoError(uow.FulfilledOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("A1"))))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(before, suite.read(suite.pendingPath))
	suite.NoFileExists(suite.fulfilledPath)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_CommitWritesBothStores() {
	ctx := context.Background()
	suite.seed(suite.pendingPath, suite.newOrder("A1"), suite.newOrder("B2"))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	pending, err := uow.PendingOrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	moved, err := pending.RemoveAt(0)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, pending))
	suite.Require().NoError(uow.FulfilledOrderRepository().SaveAll(ctx, order.NewList(moved)))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	remaining, err := reader.PendingOrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	archived, err := reader.FulfilledOrderRepository().GetAll(ctx)
	suite.Require().NoError(err)

	suite.Equal(1, remaining.Len())
	suite.True(remaining.Contains(kernel.MustNewOrderID("B2")))
	suite.Equal(1, archived.Len())
	suite.True(archived.Contains(kernel.MustNewOrderID("A1")))
	suite.noTempFiles()
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_FailedCommitRestoresStores() {
	ctx := context.Background()
	suite.seed(suite.pendingPath, suite.newOrder("A1"))
	pendingBefore := suite.read(suite.pendingPath)

	uow := suite.factory.Create()
	renameErr := errors.New("device busy")
	calls := 0
	filestore.SetRename(uow, func(oldpath, newpath string) error {
		calls++
		if calls == 2 {
			return renameErr
		}
		return os.Rename(oldpath, newpath)
	})

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, order.NewList()))
	suite.Require().NoError(uow.FulfilledOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("A1"))))

	err := uow.Commit(ctx)

	suite.Require().ErrorIs(err, renameErr)
	suite.Equal(pendingBefore, suite.read(suite.pendingPath), "Pending store should be put back")
	suite.NoFileExists(suite.fulfilledPath)
	suite.noTempFiles()
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_FailedCommitRemovesNewStores() {
	ctx := context.Background()
	uow := suite.factory.Create()
	calls := 0
	filestore.SetRename(uow, func(oldpath, newpath string) error {
		calls++
		if calls == 2 {
			return errors.New("device busy")
		}
		return os.Rename(oldpath, newpath)
	})

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("A1"))))
	suite.Require().NoError(uow.FulfilledOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("B2"))))

	suite.Require().Error(uow.Commit(ctx))
	suite.NoFileExists(suite.pendingPath)
	suite.NoFileExists(suite.fulfilledPath)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_CanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("A1"))))

	cancel()

	suite.Require().ErrorIs(uow.Commit(ctx), context.Canceled)
	suite.NoFileExists(suite.pendingPath)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_WritesOutsideTransactionGoToDisk() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.PendingOrderRepository().SaveAll(ctx, order.NewList(suite.newOrder("A1"))))

	suite.FileExists(suite.pendingPath)
}

func (suite *UnitOfWorkTestSuite) noTempFiles() {
	matches, err := filepath.Glob(filepath.Join(suite.dir, ".*.tmp"))
	suite.Require().NoError(err)
	suite.Empty(matches)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
