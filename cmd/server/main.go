package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sobreaviso/backend/config"
	"sobreaviso/backend/internal/api/handler"
	"sobreaviso/backend/internal/api/router"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/database"
	"sobreaviso/backend/pkg/jwt"
	applogger "sobreaviso/backend/pkg/logger"
	"sobreaviso/backend/pkg/redis"
)

func main() {
	// 1. Carrega a configuração
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializa o log
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao inicializar log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("aplicação iniciando...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conecta ao banco de dados
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("falha na conexão com o banco de dados", zap.Error(err))
	}
	logger.Info("banco de dados conectado")

	// 3.1 Executa as migrações
	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatal("falha nas migrações do banco de dados", zap.Error(err))
	}

	// 4. Conecta ao Redis (opcional: na falha segue sem cache, sem
	// lista negra de tokens e sem limite de requisições)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("falha na conexão com o Redis, seguindo em modo degradado", zap.Error(err))
		rdb = nil
	}

	// 5. Inicializa o gerenciador de JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Injeção de dependências: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Inicializa as rotas
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Sobe o servidor HTTP (com desligamento gracioso)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	// 9. Espera sinal do sistema e desliga graciosamente
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal de desligamento recebido", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no desligamento do servidor", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor encerrado")
}
