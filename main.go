package main

import (
	"meetpoll-api/core/logger"
	"meetpoll-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
