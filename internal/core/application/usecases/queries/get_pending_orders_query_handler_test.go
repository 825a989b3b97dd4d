package queries_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"restaurant/internal/adapters/out/filestore"
	"restaurant/internal/adapters/out/filestore/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/suite"
)

type GetPendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	repo    *orderrepo.JSONOrderRepository
	handler queries.GetPendingOrdersQueryHandler
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupTest() {
	logger := log.New("test")
	logger.SetLevel(log.OFF)

	path := filepath.Join(suite.T().TempDir(), "orders.json")
	suite.repo = orderrepo.NewJSONOrderRepository(filestore.NewDiskStorage(logger), path, order.Pending)
	suite.handler = queries.NewGetPendingOrdersQueryHandler(suite.repo)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) newOrder(id string) *order.Order {
	item, err := order.NewLineItem("Japchae", 11000, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.MustNewOrderID(id), "Choi", []order.LineItem{item})
	suite.Require().NoError(err)
	return o
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_MissingStore() {
	pending, err := suite.handler.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.True(pending.IsEmpty())
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_KeepsStoreOrder() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.SaveAll(ctx, order.NewList(
		suite.newOrder("C3"),
		suite.newOrder("A1"),
		suite.newOrder("B2"),
	)))

	pending, err := suite.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	ids := make([]string, 0, pending.Len())
	for _, o := range pending.Orders() {
		ids = append(ids, o.ID().String())
		suite.Equal(order.Pending, o.Status())
	}
	suite.Equal([]string{"C3", "A1", "B2"}, ids)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingOrdersQuery{})

	suite.True(errors.Is(err, queries.ErrGetPendingOrdersQueryIsNotConstructed))
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
