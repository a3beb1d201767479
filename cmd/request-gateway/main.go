package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asimihsan/request_gateway/internal/audit/stdout"
	"github.com/asimihsan/request_gateway/internal/backend/httpfetch"
	"github.com/asimihsan/request_gateway/internal/engine/opa"
	"github.com/asimihsan/request_gateway/internal/events"
	"github.com/asimihsan/request_gateway/internal/metrics"
	policyfile "github.com/asimihsan/request_gateway/internal/policy/file"
	"github.com/asimihsan/request_gateway/pkg/config/loader"
	"github.com/asimihsan/request_gateway/pkg/gate"
)

type evaluateRequest struct {
	Identifier string `json:"identifier"`
}

type evaluateResponse struct {
	Kind    string `json:"kind"`
	Reason  string `json:"reason,omitempty"`
	Payload string `json:"payload,omitempty"`
}

type policyRequest struct {
	Identifier string `json:"identifier"`
	Action     string `json:"action"` // add | remove
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"status":  "error",
		"message": msg,
	})
}

func main() {
	configPath := flag.String("config", "config/local.pkl", "path to the Pkl configuration file")
	flag.Parse()

	ctx := context.Background()

	// Register Prometheus metrics
	metrics.MustRegister()

	// Load configuration
	cfg, configSHA, err := loader.LoadFromPathWithSHA(ctx, *configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	fmt.Printf("Configuration loaded (sha %s):\n%s\n", configSHA, spew.Sdump(cfg))

	// Seed the policy set from config and the optional denylist file
	policySet := gate.NewPolicySet(cfg.Policy.DeniedIdentifiers...)
	if cfg.Policy.DenylistPath != "" {
		identifiers, err := policyfile.LoadDenylist(cfg.Policy.DenylistPath)
		if err != nil {
			log.Fatalf("Failed to load denylist: %v", err)
		}
		for _, identifier := range identifiers {
			policySet.Add(identifier)
		}
	}
	log.Printf("Policy set seeded with %d identifiers", policySet.Len())

	backend := httpfetch.New(
		cfg.Backend.BaseUrl,
		cfg.Backend.FetchTimeout.GoDuration(),
		cfg.Backend.CacheTtl.GoDuration(),
	)

	keeper := gate.New(policySet, backend).WithAudit(stdout.New())
	if cfg.Backend.ResultCacheTtl.GoDuration() > 0 {
		keeper = keeper.WithResultCache(cfg.Backend.ResultCacheTtl.GoDuration())
	}

	// Optional pattern rules
	policyID := ""
	if cfg.Policy.RulesPath != "" {
		provider := policyfile.New(cfg.Policy.RulesPath)
		bundle, err := provider.GetPolicyBundle(ctx)
		if err != nil {
			log.Fatalf("Failed to load rule bundle: %v", err)
		}
		engine, err := opa.NewEngine(bundle)
		if err != nil {
			log.Fatalf("Failed to compile rule engine: %v", err)
		}
		keeper = keeper.WithEngine(engine, bundle.ID())
		policyID = bundle.ID()
		log.Printf("Rule engine active (bundle %s)", policyID)
	}

	var emitter events.Emitter = events.NewLogEmitter()
	if cfg.Events.Enabled {
		pubsubEmitter, err := events.NewPubSubEmitter(ctx, cfg.Events.PubsubProject, cfg.Events.PubsubTopic)
		if err != nil {
			log.Fatalf("Failed to init pubsub emitter: %v", err)
		}
		defer pubsubEmitter.Close()
		emitter = events.NewMultiEmitter(events.NewLogEmitter(), pubsubEmitter)
	}

	// Start metrics server
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("Starting metrics server on %s", cfg.Prometheus.ListenAddr)
		if err := http.ListenAndServe(cfg.Prometheus.ListenAddr, mux); err != nil {
			log.Fatalf("Failed to start metrics server: %v", err)
		}
	}()

	http.HandleFunc("/v1/evaluate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		startTime := time.Now()
		result, err := keeper.Evaluate(r.Context(), req.Identifier)

		event := events.DecisionEvent{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			RequestID:  uuid.NewString(),
			Identifier: req.Identifier,
			PolicyID:   policyID,
			LatencyMs:  time.Since(startTime).Milliseconds(),
		}

		if err != nil {
			event.Kind = "error"
			event.Reason = err.Error()
			emitter.Emit(event)

			switch {
			case errors.Is(err, gate.ErrInvalidRequest):
				metrics.EvaluationsTotal.WithLabelValues("invalid").Inc()
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				metrics.EvaluationsTotal.WithLabelValues("backend_failure").Inc()
				writeError(w, http.StatusBadGateway, err.Error())
			}
			return
		}

		event.Kind = string(result.Kind)
		event.Reason = result.Reason
		emitter.Emit(event)

		metrics.EvaluationsTotal.WithLabelValues(string(result.Kind)).Inc()
		writeJSON(w, http.StatusOK, evaluateResponse{
			Kind:    string(result.Kind),
			Reason:  result.Reason,
			Payload: result.Payload,
		})
	})

	http.HandleFunc("/v1/policy", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req policyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		action := gate.PolicyAction(req.Action)
		switch action {
		case gate.PolicyAdd, gate.PolicyRemove:
			keeper.UpdatePolicy(req.Identifier, action)
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
		}
	})

	log.Printf("Request gateway running on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, nil))
}
