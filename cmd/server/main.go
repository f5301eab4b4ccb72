// Command server exposes a slovoform morpher as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/morph?sentence=<sentence>
//	POST /api/morph            body: {"sentence":"..."}
//	GET  /api/word?word=<lemma>&tags=NOUN,sing,datv
//	GET  /api/forms?lemma=<lemma>
//	GET  /api/tags
//	GET  /health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/ruslingua/slovoform"
)

// ---- JSON response types ------------------------------------------------

type morphResponse struct {
	Sentence string `json:"sentence"`
	Result   string `json:"result"`
}

type wordResponse struct {
	Word   string   `json:"word"`
	Tags   []string `json:"tags"`
	Code   uint32   `json:"code"`
	Result string   `json:"result"`
}

type formJSON struct {
	Form string   `json:"form"`
	Code uint32   `json:"code"`
	Tags []string `json:"tags,omitempty"`
}

type formsResponse struct {
	Lemma string     `json:"lemma"`
	Forms []formJSON `json:"forms"`
}

type tagJSON struct {
	Tag   string `json:"tag"`
	Prime uint32 `json:"prime"`
}

type tagsResponse struct {
	Count int       `json:"count"`
	Tags  []tagJSON `json:"tags"`
}

type healthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
	Forms  int    `json:"forms"`
	Tags   int    `json:"tags"`
	Uptime string `json:"uptime"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// splitTags splits a query tag list on commas and spaces.
func splitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// ---- handlers -----------------------------------------------------------

func handleMorph(m *slovoform.Morpher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sentence string
		switch r.Method {
		case http.MethodGet:
			sentence = r.URL.Query().Get("sentence")
			if sentence == "" {
				writeError(w, http.StatusBadRequest, "missing 'sentence' query parameter")
				return
			}
		case http.MethodPost:
			var body struct {
				Sentence string `json:"sentence"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Sentence == "" {
				writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
				return
			}
			sentence = body.Sentence
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}

		writeJSON(w, http.StatusOK, morphResponse{
			Sentence: sentence,
			Result:   m.Morph(sentence),
		})
	}
}

func handleWord(m *slovoform.Morpher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		tags := splitTags(r.URL.Query().Get("tags"))
		code := m.SpecCode(tags)

		writeJSON(w, http.StatusOK, wordResponse{
			Word:   word,
			Tags:   tags,
			Code:   uint32(code),
			Result: m.MorphWord(word, code),
		})
	}
}

func handleForms(m *slovoform.Morpher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		entry := m.Word(lemma)
		if entry == nil {
			writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", lemma))
			return
		}

		forms := entry.Forms()
		out := make([]formJSON, 0, len(forms))
		for _, f := range forms {
			tags, ok := m.DecodeTags(f.Code)
			if !ok {
				tags = nil
			}
			out = append(out, formJSON{
				Form: f.Text,
				Code: uint32(f.Code),
				Tags: tags,
			})
		}
		writeJSON(w, http.StatusOK, formsResponse{Lemma: entry.Lemma(), Forms: out})
	}
}

func handleTags(m *slovoform.Morpher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		names := m.Tags()
		tags := make([]tagJSON, 0, len(names))
		for _, name := range names {
			p, _ := m.Prime(name)
			tags = append(tags, tagJSON{Tag: name, Prime: p})
		}
		writeJSON(w, http.StatusOK, tagsResponse{Count: len(tags), Tags: tags})
	}
}

func handleHealth(m *slovoform.Morpher, start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status: "ok",
			Words:  m.WordCount(),
			Forms:  m.FormCount(),
			Tags:   m.TagCount(),
			Uptime: time.Since(start).Round(time.Second).String(),
		})
	}
}

// ---- middleware ---------------------------------------------------------

// withRequestID tags every response with an X-Request-ID, keeping a
// caller-provided one when present.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects requests over the shared limit with 429.
func withRateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// withLogging writes one structured line per request.
func withLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", w.Header().Get("X-Request-ID"),
		)
	})
}

// ---- main ---------------------------------------------------------------

func main() {
	dictPath := flag.String("dict", "", "path to the dictionary file")
	addr := flag.String("addr", ":8080", "listen address")
	cp1251 := flag.Bool("cp1251", false, "dictionary file is Windows-1251 encoded")
	rps := flag.Float64("rps", 50, "allowed requests per second")
	burst := flag.Int("burst", 100, "rate limiter burst size")
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("missing -dict flag")
	}

	var opts []slovoform.OpenOption
	if *cp1251 {
		opts = append(opts, slovoform.WithWindows1251())
	}

	log.Printf("loading dictionary from %s …", *dictPath)
	m, err := slovoform.Open(*dictPath, opts...)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	log.Printf("dictionary loaded: %d words, %d forms, %d tags",
		m.WordCount(), m.FormCount(), m.TagCount())

	start := time.Now()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/morph", handleMorph(m))
	mux.HandleFunc("/api/word", handleWord(m))
	mux.HandleFunc("/api/forms", handleForms(m))
	mux.HandleFunc("/api/tags", handleTags(m))
	mux.HandleFunc("/health", handleHealth(m, start))

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	limiter := rate.NewLimiter(rate.Limit(*rps), *burst)
	handler := cors.Default().Handler(
		withRequestID(withRateLimit(limiter, withLogging(logger, mux))))

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
