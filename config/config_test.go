package config_test

import (
	"os"
	"reflect"
	"testing"
	"time"

	"graphsense-dashboard/config"
)

func TestInit(t *testing.T) {
	type env struct {
		environment    string
		port           string
		storageUrl     string
		storageTimeout string
		currencies     string
		mongoDbName    string
		mongoDbUrl     string
	}

	type args struct {
		env env
	}

	setEnv := func(env env) {
		os.Setenv("APP_ENV", env.environment)
		os.Setenv("PORT", env.port)
		os.Setenv("STORAGE_URL", env.storageUrl)
		os.Setenv("STORAGE_TIMEOUT", env.storageTimeout)
		os.Setenv("CURRENCIES", env.currencies)
		os.Setenv("MONGO_DB_NAME", env.mongoDbName)
		os.Setenv("MONGO_DB_URL", env.mongoDbUrl)
	}

	tests := []struct {
		name      string
		args      args
		want      *config.Config
		wantError bool
	}{
		{
			name: "Test config file!",
			args: args{
				env: env{
					environment:    "development",
					port:           "5000",
					storageUrl:     "http://localhost:9000",
					storageTimeout: "3s",
					currencies:     "btc,ltc",
					mongoDbName:    "example",
					mongoDbUrl:     "mongodb://127.0.0.1",
				},
			},
			want: &config.Config{
				Environment: "development",
				Port:        "5000",
				Storage: config.Storage{
					StorageUrl:     "http://localhost:9000",
					StorageTimeout: 3 * time.Second,
					Currencies:     []string{"btc", "ltc"},
				},
				MongoDb: config.MongoDb{
					MongoDbName: "example",
					MongoDbUrl:  "mongodb://127.0.0.1",
				},
				Metrics: config.Metrics{
					MetricsEnabled: true,
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setEnv(test.args.env)

			got, err := config.GetConfig()
			if (err != nil) != test.wantError {
				t.Errorf("Init() error = %s, wantErr %v", err, test.wantError)

				return
			}

			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Init() got = %v, want %v", got, test.want)
			}

			if !got.UserTagsEnabled() {
				t.Errorf("UserTagsEnabled() = false, want true")
			}
		})
	}
}
