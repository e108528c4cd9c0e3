package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Numeratus/Battleship/api"
	"github.com/Numeratus/Battleship/db"
	"github.com/Numeratus/Battleship/db/sqlc"
	"github.com/Numeratus/Battleship/internal/logger"
	mb "github.com/Numeratus/Battleship/models/battleship"
	mc "github.com/Numeratus/Battleship/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	logger.Init()

	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// Analytics is optional; without DATABASE_URL the service
	// runs with counters disabled.
	var querier sqlc.Querier
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		querier = sqlc.New(db.MustConnectToDb(psqlUrl))
	} else {
		logger.Log.Warnln("DATABASE_URL not set, analytics disabled")
	}

	sessionManager := mc.NewBattleshipSessionManager()
	go sessionManager.CleanupPeriodically()

	gameManager := mb.NewBattleshipGameManager()

	rp := api.NewRequestProcessor(sessionManager, gameManager, querier)

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	logger.Log.Infof("Listening to port %s", port)
	logger.Log.Fatalln(http.ListenAndServe("0.0.0.0:"+port, mux))
}
