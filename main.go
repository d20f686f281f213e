package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidancornelius/murmur-api/api"
	"github.com/aidancornelius/murmur-api/external/healthkit"
	"github.com/aidancornelius/murmur-api/store"
	"github.com/aidancornelius/murmur-api/worker"
)

func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("murmur")
	viper.AutomaticEnv()

	viper.SetDefault("listen_addr", ":8089")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("timezone", "Australia/Adelaide")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "murmur")
	viper.SetDefault("mongo.pool_size", 16)
	viper.SetDefault("healthkit.cache_ttl", "15m")
	viper.SetDefault("trace_mode", false)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Info("no config file loaded, using environment and defaults")
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
}

func main() {
	initConfig()
	initLog()

	location, err := time.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		log.WithError(err).Fatal("invalid timezone")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(viper.GetString("mongo.conn")).
		SetMaxPoolSize(viper.GetUint64("mongo.pool_size"))
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.WithError(err).Fatal("connect to mongo")
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	if err := mongoStore.Ping(); err != nil {
		log.WithError(err).Fatal("ping mongo")
	}
	defer mongoStore.Close()

	var healthKit *healthkit.Client
	if endpoint := viper.GetString("healthkit.endpoint"); endpoint != "" {
		healthKit = healthkit.New(endpoint, viper.GetDuration("healthkit.cache_ttl"))
	}

	snapshotWorker := worker.NewSnapshotWorker(mongoStore, location)
	if err := snapshotWorker.Start(); err != nil {
		log.WithError(err).Fatal("start snapshot worker")
	}
	defer snapshotWorker.Stop()

	server := api.NewServer(mongoStore, healthKit, location, viper.GetBool("trace_mode"))

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("shutdown http server")
		}
	}()

	addr := viper.GetString("listen_addr")
	log.WithField("addr", addr).Info("murmur api started")
	if err := server.Run(addr); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("run http server")
	}
}
