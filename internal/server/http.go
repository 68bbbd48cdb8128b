package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/customlist"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/detect"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/service"
)

type handler struct {
	svc    *service.TurkcelestirmeService
	custom *customlist.List // Redis yoksa nil; whitelist uçları 503 döner
	log    zerolog.Logger
}

// NewHTTPServer, API yönlendiricisini kurar ve dinlemeye hazır bir
// http.Server döndürür. Sunucuyu başlatmak ve kapatmak çağıranın işidir.
func NewHTTPServer(addr string, svc *service.TurkcelestirmeService, custom *customlist.List, log zerolog.Logger) *http.Server {
	h := &handler{svc: svc, custom: custom, log: log}

	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", h.analyze).Methods(http.MethodPost)
	api.HandleFunc("/apply", h.apply).Methods(http.MethodPost)
	api.HandleFunc("/whitelist", h.whitelistAll).Methods(http.MethodGet)
	api.HandleFunc("/whitelist", h.whitelistAdd).Methods(http.MethodPost)
	api.HandleFunc("/whitelist/{word}", h.whitelistRemove).Methods(http.MethodDelete)

	return &http.Server{Addr: addr, Handler: r}
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "geçersiz istek gövdesi")
		return
	}
	resp, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) apply(w http.ResponseWriter, r *http.Request) {
	var req service.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "geçersiz istek gövdesi")
		return
	}
	resp, err := h.svc.Apply(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) whitelistAll(w http.ResponseWriter, r *http.Request) {
	if h.custom == nil {
		writeError(w, http.StatusServiceUnavailable, "özel beyaz liste deposu yapılandırılmadı")
		return
	}
	words, err := h.custom.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"words": words})
}

func (h *handler) whitelistAdd(w http.ResponseWriter, r *http.Request) {
	if h.custom == nil {
		writeError(w, http.StatusServiceUnavailable, "özel beyaz liste deposu yapılandırılmadı")
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Word == "" {
		writeError(w, http.StatusBadRequest, "word alanı gerekli")
		return
	}
	if err := h.custom.Add(r.Context(), req.Word); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *handler) whitelistRemove(w http.ResponseWriter, r *http.Request) {
	if h.custom == nil {
		writeError(w, http.StatusServiceUnavailable, "özel beyaz liste deposu yapılandırılmadı")
		return
	}
	word := mux.Vars(r)["word"]
	if word == "" {
		writeError(w, http.StatusBadRequest, "word gerekli")
		return
	}
	if err := h.custom.Remove(r.Context(), word); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError: tanınmayan seviye istemci hatasıdır; depo hataları
// yeniden denenmeden 500 olarak yüzeye çıkar.
func (h *handler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, detect.ErrUnknownLevel) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Error().Err(err).Msg("İstek işlenemedi")
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// corsMiddleware: web arayüzü farklı bir origin'den rahat çalışsın.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
