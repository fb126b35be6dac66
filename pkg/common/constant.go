package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFootfallDBType string = "FOOTFALL_DB_TYPE"
	EnvKeyFootfallDbPath string = "FOOTFALL_DB_PATH"

	EnvKeyFootfallHttpHostPort string = "FOOTFALL_HTTP_HOST_PORT"

	EnvKeyFootfallLogDir string = "FOOTFALL_LOG_DIR"

	EnvKeyFootfallDefaultRate  string = "FOOTFALL_DEFAULT_RATE"
	EnvKeyFootfallDefaultBurst string = "FOOTFALL_DEFAULT_BURST"

	HeaderAccountID string = "X-Account-ID"

	LoggerNameFootfallCore       string = "footfall_core"
	LoggerNameRestfulServer      string = "restful_server"
	LoggerFieldFootfallCategory  string = "category"
	LoggerCategoryFootfallStore  string = "store"
	LoggerCategoryFootfallSample string = "sample"
	LoggerCategoryFootfallAlert  string = "alert"
	LoggerCategoryFootfallConfig string = "config"
	LoggerCategoryFootfallStats  string = "analytics"
)
