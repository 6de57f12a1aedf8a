package main

import (
	"io"
	"net/http"

	v1 "FlowVet/api/gen/v1"

	"github.com/gorilla/mux"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// newRouter wires the HTTP endpoints onto the same service
// implementations the gRPC server uses. Requests and responses use the
// protojson encoding of the v1 messages.
func newRouter(qs *QueryServiceServer, vs *ValidationServiceServer) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/aggregate", aggregateHandler(qs)).Methods("POST")
	r.HandleFunc("/api/v1/flows/trace", traceHandler(qs)).Methods("POST")
	r.HandleFunc("/api/v1/rejects", rejectsHandler(qs)).Methods("POST")
	r.HandleFunc("/api/v1/validate", validateHandler(vs)).Methods("POST")
	r.HandleFunc("/api/v1/health", healthHandler(qs)).Methods("GET")
	return r
}

// readProtoJSON decodes a protojson request body. On failure it writes
// a 400 and returns false.
func readProtoJSON(w http.ResponseWriter, r *http.Request, msg proto.Message) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	if err := protojson.Unmarshal(body, msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeProtoJSON(w http.ResponseWriter, msg proto.Message) {
	data, err := protojson.Marshal(msg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func aggregateHandler(s *QueryServiceServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req v1.AggregationRequest
		if !readProtoJSON(w, r, &req) {
			return
		}
		resp, err := s.AggregateFlows(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeProtoJSON(w, resp)
	}
}

func traceHandler(s *QueryServiceServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req v1.TraceFlowRequest
		if !readProtoJSON(w, r, &req) {
			return
		}
		resp, err := s.TraceFlow(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeProtoJSON(w, resp)
	}
}

func rejectsHandler(s *QueryServiceServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req v1.RejectSummaryRequest
		if !readProtoJSON(w, r, &req) {
			return
		}
		resp, err := s.RejectSummary(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeProtoJSON(w, resp)
	}
}

func validateHandler(s *ValidationServiceServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req v1.ValidateRequest
		if !readProtoJSON(w, r, &req) {
			return
		}
		resp, err := s.Validate(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeProtoJSON(w, resp)
	}
}

func healthHandler(s *QueryServiceServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.HealthCheck(r.Context(), &v1.HealthCheckRequest{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeProtoJSON(w, resp)
	}
}
