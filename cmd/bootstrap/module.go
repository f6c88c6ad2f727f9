package bootstrap

import (
	"fieldbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	components.InfraModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
