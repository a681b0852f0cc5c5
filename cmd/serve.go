package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/diatonic/chord"
	"github.com/jsphweid/diatonic/constants"
	"github.com/jsphweid/diatonic/key"
	"github.com/jsphweid/diatonic/model"
	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
	"github.com/jsphweid/diatonic/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves scales, keys, chords and pitches over HTTP",
	Long:  `Serves scales, keys, chords and pitches as JSON on $PORT (default 8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type requestIDKey struct{}

const requestIDHeader = "X-Request-Id"

// Server answers theory lookups against one pattern registry.
type Server struct {
	registry *scale.Registry
}

func NewServer(r *scale.Registry) *Server {
	return &Server{registry: r}
}

// Router wires the routes and the request id middleware.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestID)
	router.HandleFunc("/scales/{tonic}/{pattern}", s.HandleScale).Methods(http.MethodGet)
	router.HandleFunc("/keys/{name}", s.HandleKey).Methods(http.MethodGet)
	router.HandleFunc("/keys/{name}/modes", s.HandleModes).Methods(http.MethodGet)
	router.HandleFunc("/chords/{name}", s.HandleChord).Methods(http.MethodGet)
	router.HandleFunc("/pitches/{note}/{octave}", s.HandlePitch).Methods(http.MethodGet)
	return router
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.Scope().SetTag("request_id", id)
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

func (s *Server) HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := scale.FromName(s.registry, note.Text(vars["tonic"]), vars["pattern"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scaleResponse(sc))
}

func (s *Server) HandleKey(w http.ResponseWriter, r *http.Request) {
	k, err := key.FromName(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, keyResponse(k))
}

func (s *Server) HandleModes(w http.ResponseWriter, r *http.Request) {
	k, err := key.FromName(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	modes, err := k.Modes()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modesResponse(k, modes))
}

func (s *Server) HandleChord(w http.ResponseWriter, r *http.Request) {
	c, err := buildChord(mux.Vars(r)["name"], r.URL.Query().Get("key"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chordResponse(c))
}

func (s *Server) HandlePitch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	n, err := note.Parse(vars["note"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	o, err := strconv.Atoi(vars["octave"])
	if err != nil {
		writeError(w, r, &badRequestError{"octave must be a number"})
		return
	}
	res, err := pitchResponse(n, note.Octave(o))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

// statusOf maps validation failures to 400. Anything else is unexpected.
func statusOf(err error) int {
	var (
		invalidNote    *note.InvalidNoteError
		invalidQuality *key.InvalidQualityError
		invalidKey     *scale.InvalidKeyError
		invalidScale   *scale.InvalidScaleError
		invalidMode    *scale.InvalidModeError
		invalidChord   *chord.InvalidChordError
		noSpelling     *pitch.NoSpellingError
		unavailable    *pitch.UnavailableNoteError
		badRequest     *badRequestError
	)
	switch {
	case errors.As(err, &invalidNote),
		errors.As(err, &invalidQuality),
		errors.As(err, &invalidKey),
		errors.As(err, &invalidScale),
		errors.As(err, &invalidMode),
		errors.As(err, &invalidChord),
		errors.As(err, &noSpelling),
		errors.As(err, &unavailable),
		errors.As(err, &badRequest),
		errors.Is(err, chord.ErrRootNotInKey),
		errors.Is(err, pitch.ErrUnknownSpelling):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", requestID(r), r.Method, r.URL.Path, err)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), RequestID: requestID(r)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not write response: %v", err)
	}
}

func serve() error {
	if dsn := constants.GetSentryDSN(); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			Environment:      constants.GetEnvironment(),
			TracesSampleRate: 0.2,
		})
		if err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
	}

	sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})
	handler := cors.Default().Handler(sentryHandler.Handle(NewServer(registry).Router()))

	addr := ":" + constants.GetPort()
	log.Printf("listening on %s (%s)", addr, constants.GetEnvironment())
	return http.ListenAndServe(addr, handler)
}
