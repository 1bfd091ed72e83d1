package cmd

import (
	"log/slog"

	"eventsupply/internal/adapters/out/postgres"
	"eventsupply/internal/core/application/usecases/commands"
	"eventsupply/internal/core/application/usecases/queries"
	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/auth"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.NotificationGateway
	signer     *auth.TokenSigner
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	gateway ports.NotificationGateway,
	signer *auth.TokenSigner,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		signer:     signer,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.GatedTransitionUoWFactory = FuncGatedTransitionUoWFactory(func() commands.GatedTransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateAdvancePreparationCommandHandler() commands.AdvancePreparationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvancePreparationCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.GatedTransitionUoWFactory = FuncGatedTransitionUoWFactory(func() commands.GatedTransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachPhotoCommandHandler() commands.AttachPhotoCommandHandler {
	var f commands.EvidenceUoWFactory = FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachPhotoCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueCredentialCommandHandler() commands.IssueCredentialCommandHandler {
	var f commands.CredentialUoWFactory = FuncCredentialUoWFactory(func() commands.CredentialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueCredentialCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateResendCredentialCommandHandler() commands.ResendCredentialCommandHandler {
	var f commands.CredentialUoWFactory = FuncCredentialUoWFactory(func() commands.CredentialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResendCredentialCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateVerifyLoginCommandHandler() commands.VerifyLoginCommandHandler {
	var f commands.CredentialUoWFactory = FuncCredentialUoWFactory(func() commands.CredentialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyLoginCommandHandler(f, c.signer)
}

func (c *CompositionRoot) CreatePurgeCredentialsCommandHandler() commands.PurgeCredentialsCommandHandler {
	var f commands.CredentialUoWFactory = FuncCredentialUoWFactory(func() commands.CredentialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeCredentialsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCredentialUoWFactory func() commands.CredentialUoW

func (f FuncCredentialUoWFactory) Create() commands.CredentialUoW {
	return f()
}

type FuncGatedTransitionUoWFactory func() commands.GatedTransitionUoW

func (f FuncGatedTransitionUoWFactory) Create() commands.GatedTransitionUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncEvidenceUoWFactory func() commands.EvidenceUoW

func (f FuncEvidenceUoWFactory) Create() commands.EvidenceUoW {
	return f()
}
