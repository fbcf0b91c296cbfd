package cmd

import (
	"log/slog"
	"os"

	"storefront/internal/adapters/out/eventlog"
	"storefront/internal/adapters/out/memory/orderrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

type CompositionRoot struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher

	paymentPolicy services.FailurePolicy
	shipment      services.ShipmentService
}

func NewCompositionRoot(config Config) (CompositionRoot, error) {
	paymentPolicy, err := services.NewRandomFailurePolicy(config.PaymentFailureProbability)
	if err != nil {
		return CompositionRoot{}, err
	}

	shipmentPolicy, err := services.NewRandomFailurePolicy(config.ShipmentFailureProbability)
	if err != nil {
		return CompositionRoot{}, err
	}

	shipment, err := services.NewShipmentService(shipmentPolicy)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orders:        orderrepo.NewRepository(),
		publisher:     eventlog.NewPublisher(slog.New(slog.NewTextHandler(os.Stdout, nil))),
		paymentPolicy: paymentPolicy,
		shipment:      shipment,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateCheckoutOrderCommandHandler() commands.CheckoutOrderCommandHandler {
	return commands.NewCheckoutOrderCommandHandler(c.orders, c.publisher, c.paymentPolicy, c.shipment)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}
