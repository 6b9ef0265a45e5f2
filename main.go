package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"storycrew/config"
	"storycrew/handlers"
	"storycrew/llm"
	"storycrew/middleware"
	"storycrew/session"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	provider := llm.SelectProvider(config.GetProvider(), config.GetOpenAIModel(), config.GetGeminiModel())
	log.Println("Using LLM provider:", provider.Name())

	client := llm.NewClient(provider)
	handlers.Init(session.NewManager(client))

	// Set up HTTP handlers
	http.HandleFunc("/session", methodSwitch)
	http.HandleFunc("/session/name", middleware.EnableCORS(handlers.RenameHandler))
	http.HandleFunc("/agents", middleware.EnableCORS(handlers.AgentsHandler))
	http.HandleFunc("/agents/", middleware.EnableCORS(handlers.AgentDetailRESTHandler))
	http.HandleFunc("/mission", middleware.EnableCORS(handlers.MissionHandler))
	http.HandleFunc("/question", middleware.EnableCORS(handlers.QuestionHandler))
	http.HandleFunc("/examples", middleware.EnableCORS(handlers.ExamplesHandler))
	http.HandleFunc("/export", middleware.EnableCORS(handlers.ExportHandler))

	addr := config.GetListenAddr()
	fmt.Println("Server running on", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// methodSwitch routes /session: POST starts a session, GET inspects one
var methodSwitch = middleware.EnableCORS(func(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		handlers.StartSessionHandler(w, r)
		return
	}
	handlers.SessionHandler(w, r)
})
