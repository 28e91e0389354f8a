package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/harshitcn/cn-chatbot-sub000/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	s := server.NewServer()
	defer s.Close()

	r := s.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = fmt.Sprintf("%d", s.Port)
	}

	s.Logger.Info().Str("port", port).Msg("starting faq server")
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		s.Logger.Fatal().Err(err).Msg("server exited")
	}
}
