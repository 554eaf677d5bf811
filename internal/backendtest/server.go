// Package backendtest runs an in-memory stand-in for the NutriFit
// backend. It mirrors the endpoint surface and the semantics the client
// depends on: the custom auth-token header, message-wrapped errors,
// server-side additive calories-burn, per-date meal lists and fridge
// state. Tests drive the real client against it over loopback HTTP.
package backendtest

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type account struct {
	name     string
	password string
	userID   string
}

type Server struct {
	httpServer *httptest.Server
	requests   atomic.Int64

	mu          sync.Mutex
	accounts    map[string]*account                  // email -> account
	tokens      map[string]string                    // token -> userID
	profiles    map[string]map[string]any            // userID -> user-info doc
	entries     map[string]map[string]map[string]any // userID -> date -> entry doc
	meals       map[string]map[string][]map[string]any
	fridge      map[string][]map[string]any
	barcodes    map[string]map[string]any // barcode -> product doc
	trainings   map[string][]map[string]any
	trainingLog []string // goal path segments requested, in order
}

func New() *Server {
	s := &Server{
		accounts:  map[string]*account{},
		tokens:    map[string]string{},
		profiles:  map[string]map[string]any{},
		entries:   map[string]map[string]map[string]any{},
		meals:     map[string]map[string][]map[string]any{},
		fridge:    map[string][]map[string]any{},
		barcodes:  map[string]map[string]any{},
		trainings: map[string][]map[string]any{},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/sign-up", s.handleSignUp).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/sign-in", s.handleSignIn).Methods(http.MethodPost)

	auth := r.NewRoute().Subrouter()
	auth.Use(s.requireToken)
	auth.HandleFunc("/api/user-info/{userId}", s.handleGetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/api/user-info", s.handlePutProfile).Methods(http.MethodPut)
	auth.HandleFunc("/api/daily_entries/{userId}/entries/{date}", s.handleGetEntry).Methods(http.MethodGet)
	auth.HandleFunc("/api/daily_entries/{userId}/entries/{date}", s.handlePutEntry).Methods(http.MethodPut)
	auth.HandleFunc("/api/daily_entries/{userId}/entries/{date}/add-calories-burn", s.handleAddCaloriesBurn).Methods(http.MethodPost)
	auth.HandleFunc("/api/daily_entries/{userId}/entries/{date}/meals", s.handleListMeals).Methods(http.MethodGet)
	auth.HandleFunc("/api/daily_entries/{userId}/entries/{date}/meals", s.handleAddMeal).Methods(http.MethodPost)
	auth.HandleFunc("/api/daily_entries/{userId}/entries/{date}/meals/{mealId}", s.handleDeleteMeal).Methods(http.MethodDelete)
	auth.HandleFunc("/api/nutrition/get-nutritional-info/{barcode}", s.handleLookupBarcode).Methods(http.MethodGet)
	auth.HandleFunc("/api/nutrition/save-product/{userId}", s.handleSaveProduct).Methods(http.MethodPost)
	auth.HandleFunc("/api/nutrition/product-list/{userId}", s.handleListProducts).Methods(http.MethodGet)
	auth.HandleFunc("/api/nutrition/product/{userId}/{productId}", s.handleDeleteProduct).Methods(http.MethodDelete)
	auth.HandleFunc("/api/trainings/type/{goal}", s.handleTrainings).Methods(http.MethodGet)
	auth.HandleFunc("/api/recommend-dish", s.handleRecommendDish).Methods(http.MethodPost)
	auth.HandleFunc("/api/calories-food", s.handleCaloriesFood).Methods(http.MethodPost)

	counted := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.requests.Add(1)
		r.ServeHTTP(w, req)
	})
	s.httpServer = httptest.NewServer(counted)
	return s
}

func (s *Server) URL() string { return s.httpServer.URL }
func (s *Server) Close()      { s.httpServer.Close() }

// Requests counts every HTTP request the fake has received.
func (s *Server) Requests() int64 { return s.requests.Load() }

// TrainingGoalsRequested returns the goal path segments of every
// trainings fetch, in arrival order.
func (s *Server) TrainingGoalsRequested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.trainingLog...)
}

// Register creates an account directly, skipping the sign-up endpoint,
// and returns its userID.
func (s *Server) Register(name, email, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &account{name: name, password: password, userID: uuid.NewString()}
	s.accounts[email] = a
	return a.userID
}

// SeedProfile installs a raw user-info document.
func (s *Server) SeedProfile(userID string, doc map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = doc
}

// SeedDailyEntry installs a raw (possibly partial) daily-entry document.
func (s *Server) SeedDailyEntry(userID, date string, doc map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[userID] == nil {
		s.entries[userID] = map[string]map[string]any{}
	}
	s.entries[userID][date] = doc
}

// SeedBarcode makes a barcode resolvable.
func (s *Server) SeedBarcode(barcode string, product map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.barcodes[barcode] = product
}

// SeedTrainings installs programs for a goal category.
func (s *Server) SeedTrainings(goal string, programs []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trainings[goal] = programs
}

func mintToken(userID string) string {
	enc := func(v any) string {
		data, _ := json.Marshal(v)
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := enc(map[string]string{"userId": userID})
	sig := base64.RawURLEncoding.EncodeToString([]byte("backendtest"))
	return header + "." + payload + "." + sig
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		_, ok := s.tokens[req.Header.Get("auth-token")]
		s.mu.Unlock()
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Access Denied")
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (s *Server) handleSignUp(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[body.Email]; exists {
		writeMessage(w, http.StatusBadRequest, "Email already exists")
		return
	}
	s.accounts[body.Email] = &account{name: body.Name, password: body.Password, userID: uuid.NewString()}
	writeMessage(w, http.StatusOK, "User created")
}

func (s *Server) handleSignIn(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[body.Email]
	if !ok || a.password != body.Password {
		writeMessage(w, http.StatusBadRequest, "Email or password is wrong")
		return
	}
	token := mintToken(a.userID)
	s.tokens[token] = a.userID
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["userId"]
	s.mu.Lock()
	doc, ok := s.profiles[userID]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"id": userID})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, req *http.Request) {
	var doc map[string]any
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, _ := doc["id"].(string)
	if userID == "" {
		writeMessage(w, http.StatusBadRequest, "id is required")
		return
	}
	// The real backend computes the daily target server-side; a fixed
	// rule keeps it deterministic here.
	target := 2000.0
	if doc["objective"] == "WEIGHTGAIN" {
		target = 2500.0
	}
	doc["calories"] = target
	s.mu.Lock()
	s.profiles[userID] = doc
	s.mu.Unlock()
	writeMessage(w, http.StatusOK, "User info saved")
}

func (s *Server) entryLocked(userID, date string) map[string]any {
	if s.entries[userID] == nil {
		s.entries[userID] = map[string]map[string]any{}
	}
	doc, ok := s.entries[userID][date]
	if !ok {
		doc = map[string]any{
			"date":         date,
			"calories":     0.0,
			"caloriesBurn": 0.0,
			"steps":        0.0,
			"createdAt": map[string]any{
				"_seconds":     time.Now().Unix(),
				"_nanoseconds": 0,
			},
		}
		s.entries[userID][date] = doc
	}
	return doc
}

func (s *Server) handleGetEntry(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	s.mu.Lock()
	doc := s.entryLocked(vars["userId"], vars["date"])
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePutEntry(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	var update map[string]any
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	doc := s.entryLocked(vars["userId"], vars["date"])
	for k, v := range update {
		doc[k] = v
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleAddCaloriesBurn(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	var body struct {
		CaloriesBurnToAdd float64 `json:"caloriesBurnToAdd"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	doc := s.entryLocked(vars["userId"], vars["date"])
	current, _ := doc["caloriesBurn"].(float64)
	doc["caloriesBurn"] = current + body.CaloriesBurnToAdd
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) mealsLocked(userID, date string) []map[string]any {
	if s.meals[userID] == nil {
		s.meals[userID] = map[string][]map[string]any{}
	}
	return s.meals[userID][date]
}

func (s *Server) handleListMeals(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	s.mu.Lock()
	list := s.mealsLocked(vars["userId"], vars["date"])
	out := make([]map[string]any, len(list))
	copy(out, list)
	s.mu.Unlock()
	if out == nil {
		out = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddMeal(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	var body map[string]any
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	meal := map[string]any{
		"id":        uuid.NewString(),
		"name":      body["name"],
		"calories":  body["calories"],
		"quantity":  body["quantity"],
		"image_url": body["image_url"],
		"createdAt": map[string]any{
			"_seconds":     time.Now().Unix(),
			"_nanoseconds": 0,
		},
	}
	s.mu.Lock()
	s.mealsLocked(vars["userId"], vars["date"])
	s.meals[vars["userId"]][vars["date"]] = append(s.meals[vars["userId"]][vars["date"]], meal)
	s.mu.Unlock()
	writeMessage(w, http.StatusOK, "Meal added to daily entry")
}

func (s *Server) handleDeleteMeal(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.mealsLocked(vars["userId"], vars["date"])
	for i, m := range list {
		if m["id"] == vars["mealId"] {
			s.meals[vars["userId"]][vars["date"]] = append(list[:i:i], list[i+1:]...)
			writeMessage(w, http.StatusOK, "Meal deleted")
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Meal not found")
}

func (s *Server) handleLookupBarcode(w http.ResponseWriter, req *http.Request) {
	barcode := mux.Vars(req)["barcode"]
	s.mu.Lock()
	doc, ok := s.barcodes[barcode]
	s.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleSaveProduct(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["userId"]
	var doc map[string]any
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc["_id"] = uuid.NewString()
	s.mu.Lock()
	s.fridge[userID] = append(s.fridge[userID], doc)
	s.mu.Unlock()
	writeMessage(w, http.StatusOK, "Product saved")
}

func (s *Server) handleListProducts(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["userId"]
	s.mu.Lock()
	list := append([]map[string]any(nil), s.fridge[userID]...)
	s.mu.Unlock()
	if list == nil {
		list = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.fridge[vars["userId"]]
	for i, p := range list {
		if p["_id"] == vars["productId"] {
			s.fridge[vars["userId"]] = append(list[:i:i], list[i+1:]...)
			writeMessage(w, http.StatusOK, "Product deleted")
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Product not found")
}

func (s *Server) handleTrainings(w http.ResponseWriter, req *http.Request) {
	goal := mux.Vars(req)["goal"]
	s.mu.Lock()
	s.trainingLog = append(s.trainingLog, goal)
	list := append([]map[string]any(nil), s.trainings[goal]...)
	s.mu.Unlock()
	if list == nil {
		list = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRecommendDish(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Food []string `json:"food"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := "Chef's surprise"
	if len(body.Food) > 0 {
		name = body.Food[0] + " bowl"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":              uuid.NewString(),
		"Name":            name,
		"Description":     "A dish assembled from your fridge.",
		"Food":            body.Food,
		"ExtraFood":       []string{"olive oil", "salt"},
		"PreparationStep": []string{"Chop everything.", "Cook for 20 minutes.", "Serve."},
		"CookTime":        "20 min",
	})
}

func (s *Server) handleCaloriesFood(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        uuid.NewString(),
		"name":      body.Name,
		"calories":  body.Quantity * 1.29,
		"quantity":  body.Quantity,
		"image_url": "https://ai.example/generated.png",
	})
}
