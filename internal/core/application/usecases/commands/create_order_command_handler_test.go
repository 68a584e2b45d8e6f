package commands_test

import (
	"errors"
	"testing"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/model/product"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	prod := testProduct(t, "8.00")
	bacon := testIngredient(t, "1.50")
	extra, _ := order.NewCustomization(bacon.ID(), 2, true)
	item, _ := commands.NewLineItemInput(prod.ID(), "extra crispy", []order.Customization{extra})
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.PaymentCash, nil,
		[]commands.LineItemInput{item})

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		catalogRepo.On("GetIngredient", mock.Anything, bacon.ID()).Return(bacon, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Pending, placed.Status())
	assert.True(t, placed.Total().IsEqual(testMoney(t, "11.00")))
	require.Len(t, placed.LineItems(), 1)
	assert.Equal(t, "extra crispy", placed.LineItems()[0].Notes())
	orderRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockPricingUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	item := testLineItemInput(t)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.PaymentCash, nil,
		[]commands.LineItemInput{item})

	uow := new(MockPricingUoW)
	factory := new(MockPricingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	item, _ := commands.NewLineItemInput(productID, "", nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.PaymentCash, nil,
		[]commands.LineItemInput{item})

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("productId", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableProduct(t *testing.T) {
	ctx := t.Context()
	unavailable, err := product.NewProduct(kernel.NewUUID(), "Seasonal Burger", "burger",
		testMoney(t, "8.00"), false)
	require.NoError(t, err)

	item, _ := commands.NewLineItemInput(unavailable.ID(), "", nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.PaymentCash, nil,
		[]commands.LineItemInput{item})

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, unavailable.ID()).Return(unavailable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	prod := testProduct(t, "8.00")
	item, _ := commands.NewLineItemInput(prod.ID(), "", nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.PaymentCash, nil,
		[]commands.LineItemInput{item})

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	prod := testProduct(t, "8.00")
	item, _ := commands.NewLineItemInput(prod.ID(), "", nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.PaymentCash, nil,
		[]commands.LineItemInput{item})

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewLineItemPricer())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
