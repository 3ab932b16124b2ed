package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nftique/storefront/base/contenturi"
	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	bValidator "github.com/nftique/storefront/base/validator"
	"github.com/nftique/storefront/domain"
	mmiddleware "github.com/nftique/storefront/middleware"
	"github.com/nftique/storefront/service/chain"
	"github.com/nftique/storefront/service/chain/contract"
	"github.com/nftique/storefront/service/ens"
	"github.com/nftique/storefront/service/walletrpc"
	exchange_delivery "github.com/nftique/storefront/stores/exchange/delivery/http"
	exchange_usecase "github.com/nftique/storefront/stores/exchange/usecase"
	market_delivery "github.com/nftique/storefront/stores/market/delivery/http"
	market_usecase "github.com/nftique/storefront/stores/market/usecase"
	metadata_usecase "github.com/nftique/storefront/stores/metadata/usecase"
	preference_delivery "github.com/nftique/storefront/stores/preference/delivery/http"
	preference_repository "github.com/nftique/storefront/stores/preference/repository"
	preference_usecase "github.com/nftique/storefront/stores/preference/usecase"
	wallet_delivery "github.com/nftique/storefront/stores/wallet/delivery/http"
	wallet_middleware "github.com/nftique/storefront/stores/wallet/delivery/http/middleware"
	wallet_usecase "github.com/nftique/storefront/stores/wallet/usecase"
	web_resource_repository "github.com/nftique/storefront/stores/web_resource/repository"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	context.Info("init chain service")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:      viper.GetString("network.rpcUrl"),
		MaxInflight: viper.GetInt("network.maxInflight"),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init chain service")
	}

	contractAddr := domain.Address(viper.GetString("marketplace.contract")).ToLower()
	marketplaceContract := contract.NewMarketplace(&contract.MarketplaceCfg{
		ChainService: chainService,
		Address:      contractAddr,
	})

	// metadata pipeline
	httpTimeout := viper.GetDuration("http.timeout")
	ipfsGateway := viper.GetString("ipfs.gateway")
	uriResolver := contenturi.NewResolver(ipfsGateway)
	httpReader := web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout)
	var ipfsReader domain.WebResourceReaderRepository
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, ipfsGateway, httpTimeout)
	}
	metadataUseCase := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader:  httpReader,
		IpfsReader:  ipfsReader,
		UriResolver: uriResolver,
	})

	// ens on the same network
	ensService := ens.New(viper.GetString("network.rpcUrl"))

	marketUseCase := market_usecase.NewMarketUseCase(&market_usecase.MarketUseCaseCfg{
		Reader:   marketplaceContract,
		Metadata: metadataUseCase,
		Ens:      ensService,
		Workers:  viper.GetInt("marketplace.workers"),
	})

	// wallet provider is optional; without one the buy/bid and connect
	// flows answer with a wallet-unavailable error
	var walletProvider domain.WalletProvider
	if walletRpcUrl := viper.GetString("wallet.rpcUrl"); walletRpcUrl != "" {
		walletProvider, err = walletrpc.NewProvider(context, walletRpcUrl)
		if err != nil {
			context.WithField("err", err).Warn("wallet provider unavailable")
			walletProvider = nil
		}
	}

	walletUseCase := wallet_usecase.NewWalletUseCase(&wallet_usecase.WalletUseCaseCfg{
		Provider:   walletProvider,
		JwtSecret:  viper.GetString("wallet.jwtSecret"),
		SessionTtl: viper.GetDuration("wallet.sessionTtl"),
	})
	sessionMiddleware := wallet_middleware.New(walletUseCase)

	exchangeUseCase := exchange_usecase.NewExchangeUseCase(&exchange_usecase.ExchangeUseCaseCfg{
		ChainService: chainService,
		Provider:     walletProvider,
		Market:       marketUseCase,
		Contract:     contractAddr,
		PollInterval: viper.GetDuration("marketplace.receiptPollInterval"),
		PollTimeout:  viper.GetDuration("marketplace.receiptPollTimeout"),
	})

	preferenceRepo, err := preference_repository.NewSqliteRepo(viper.GetString("preference.dbPath"))
	if err != nil {
		context.WithField("err", err).Panic("failed to open preference db")
	}
	preferenceUseCase := preference_usecase.NewPreferenceUseCase(preferenceRepo)

	// log session changes; the mobile shell mirrors this to its state
	go func() {
		for event := range walletUseCase.Subscribe() {
			context.WithFields(log.Fields{
				"kind":    event.Kind,
				"address": event.Session.Address,
			}).Info("wallet session event")
		}
	}()

	market_delivery.New(e, marketUseCase)
	exchange_delivery.New(e, exchangeUseCase, sessionMiddleware)
	wallet_delivery.New(e, walletUseCase, sessionMiddleware)
	preference_delivery.New(e, preferenceUseCase)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
