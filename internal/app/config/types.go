package config

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		Assessment Assessment
		MongoDB    AppMongoDB
		RabbitMQ   AppRabbitMQ
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		Timezone                string
		EndpointPrefix          string
		ClientOrigins           []string
		MaxRequests             int
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Assessment struct {
		AttemptExpTimeInMinute int
	}

	AppMongoDB struct {
		DbName string
	}

	AppRabbitMQ struct {
		Enabled     bool
		ResultQueue string
	}

	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)
