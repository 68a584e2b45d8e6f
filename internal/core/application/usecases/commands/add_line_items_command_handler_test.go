package commands_test

import (
	"testing"
	"time"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddLineItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, "11.00")
	prod := testProduct(t, "6.50")
	item, _ := commands.NewLineItemInput(prod.ID(), "", nil)
	cmd, _ := commands.NewAddLineItemsCommand(existing.ID(), []commands.LineItemInput{item})

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemsCommandHandler(factory, services.NewLineItemPricer())
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Len(t, updated.LineItems(), 2)
	assert.True(t, updated.Total().IsEqual(testMoney(t, "17.50")))
	orderRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddLineItemsCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, "11.00")
	require.NoError(t, existing.ChangeStatus(order.Delivered, order.NewAnyStatusPolicy(), time.Now()))

	prod := testProduct(t, "6.50")
	item, _ := commands.NewLineItemInput(prod.ID(), "", nil)
	cmd, _ := commands.NewAddLineItemsCommand(existing.ID(), []commands.LineItemInput{item})

	orderRepo := new(MockOrderRepository)
	uow := new(MockPricingUoW)
	// The terminal gate must fire before any catalog lookup happens.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemsCommandHandler(factory, services.NewLineItemPricer())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Contains(t, err.Error(), "delivered")
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertNotCalled(t, "CatalogRepository")
}

func TestAddLineItemsCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	item := testLineItemInput(t)
	cmd, _ := commands.NewAddLineItemsCommand(orderID, []commands.LineItemInput{item})

	orderRepo := new(MockOrderRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemsCommandHandler(factory, services.NewLineItemPricer())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddLineItemsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockPricingUoWFactory)
	h := commands.NewAddLineItemsCommandHandler(factory, services.NewLineItemPricer())

	_, err := h.Handle(ctx, commands.AddLineItemsCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddLineItemsCommandIsNotConstructed)
}
