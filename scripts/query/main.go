package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	v1 "FlowVet/api/gen/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func main() {
	serverAddr := flag.String("addr", "localhost:50051", "The gRPC server address")
	mode := flag.String("mode", "aggregate", "Query mode: 'aggregate', 'trace', 'rejects', or 'validate'")
	taskName := flag.String("task", "", "The name of the task to query")
	flowKey := flag.String("key", "", "The flow key for trace mode (e.g., \"SrcIP=1.2.3.4,DstPort=443\")")
	field := flag.String("field", "", "Field filter for rejects mode (empty for all fields)")
	validator := flag.String("validator", "ipv4", "Validator name for validate mode")
	value := flag.String("value", "", "Value to check in validate mode")
	defaultEnd := time.Now().UTC().Format(time.RFC3339)
	endTimeStr := flag.String("end", defaultEnd, "End time in RFC3339 format (e.g., 2026-08-29T15:10:00Z).")

	flag.Parse()

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	switch *mode {
	case "aggregate":
		doAggregateQuery(ctx, v1.NewQueryServiceClient(conn), *taskName, *endTimeStr)
	case "trace":
		if *taskName == "" {
			log.Fatal("Error: -task flag is required for trace mode")
		}
		if *flowKey == "" {
			log.Fatal("Error: -key flag is required for trace mode")
		}
		doTraceQuery(ctx, v1.NewQueryServiceClient(conn), *taskName, *flowKey, *endTimeStr)
	case "rejects":
		doRejectsQuery(ctx, v1.NewQueryServiceClient(conn), *field, *endTimeStr)
	case "validate":
		if *value == "" {
			log.Fatal("Error: -value flag is required for validate mode")
		}
		doValidate(ctx, v1.NewValidationServiceClient(conn), *validator, *value)
	default:
		log.Fatalf("Unknown mode: %s. Use 'aggregate', 'trace', 'rejects', or 'validate'", *mode)
	}
}

// doAggregateQuery fetches per-task totals.
func doAggregateQuery(ctx context.Context, client v1.QueryServiceClient, taskName string, endTime string) {
	req := &v1.AggregationRequest{
		TaskName: taskName,
		EndTime:  parseAndConvert(endTime),
	}

	resp, err := client.AggregateFlows(ctx, req)
	if err != nil {
		log.Fatalf("could not perform aggregation query: %v", err)
	}

	log.Println("---", "Aggregation Results", "---")
	if len(resp.Summaries) == 0 {
		log.Println("No data returned.")
		return
	}
	for _, summary := range resp.Summaries {
		log.Printf("  Task: %s", summary.TaskName)
		log.Printf("    Total Flows:   %d", summary.FlowCount)
		log.Printf("    Total Packets: %d", summary.TotalPackets)
		log.Printf("    Total Bytes:   %d", summary.TotalBytes)
	}
	log.Println("---------------------------")
}

// doTraceQuery fetches the lifecycle of a single flow.
func doTraceQuery(ctx context.Context, client v1.QueryServiceClient, taskName, flowKeyStr string, endTime string) {
	flowKeys, err := parseFlowKeys(flowKeyStr)
	if err != nil {
		log.Fatalf("Invalid flow key format: %v", err)
	}

	req := &v1.TraceFlowRequest{
		TaskName: taskName,
		FlowKeys: flowKeys,
		EndTime:  parseAndConvert(endTime),
	}

	resp, err := client.TraceFlow(ctx, req)
	if err != nil {
		log.Fatalf("could not perform trace query: %v", err)
	}

	lc := resp.Lifecycle
	log.Println("---", "Flow Lifecycle Result", "---")
	log.Printf("  First Seen:    %s", lc.FirstSeen.AsTime().Format(time.RFC3339))
	log.Printf("  Last Seen:     %s", lc.LastSeen.AsTime().Format(time.RFC3339))
	log.Printf("  Total Packets: %d", lc.TotalPackets)
	log.Printf("  Total Bytes:   %d", lc.TotalBytes)
	log.Println("-----------------------------")
}

// doRejectsQuery fetches validation reject counts, optionally filtered
// by field name.
func doRejectsQuery(ctx context.Context, client v1.QueryServiceClient, field string, endTime string) {
	req := &v1.RejectSummaryRequest{
		Field:   field,
		EndTime: parseAndConvert(endTime),
	}

	resp, err := client.RejectSummary(ctx, req)
	if err != nil {
		log.Fatalf("could not perform reject query: %v", err)
	}

	log.Println("---", "Validation Rejects", "---")
	if len(resp.Entries) == 0 {
		log.Println("No data returned.")
		return
	}
	log.Printf("% -10s | % -45s | %s", "Field", "Reason", "Count")
	log.Println(strings.Repeat("-", 70))
	for _, entry := range resp.Entries {
		log.Printf("% -10s | % -45s | %d", entry.Field, entry.Reason, entry.Count)
	}
	log.Println("----------------------------")
}

// doValidate checks a single value against a named validator.
func doValidate(ctx context.Context, client v1.ValidationServiceClient, validator, value string) {
	resp, err := client.Validate(ctx, &v1.ValidateRequest{Validator: validator, Value: value})
	if err != nil {
		log.Fatalf("could not perform validate call: %v", err)
	}

	if resp.Valid {
		log.Printf("%q is valid (%s)", value, validator)
	} else {
		log.Printf("%q is invalid (%s): %s", value, validator, resp.Reason)
	}
}

// parseFlowKeys converts a string like "SrcIP=1.2.3.4,DstPort=80" into a map.
func parseFlowKeys(keyStr string) (map[string]string, error) {
	if keyStr == "" {
		return nil, fmt.Errorf("key string cannot be empty")
	}
	keys := make(map[string]string)
	pairs := strings.Split(keyStr, ",")
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid key-value pair: %s", pair)
		}
		keys[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return keys, nil
}

func parseAndConvert(endTimeStr string) *timestamppb.Timestamp {
	t, err := time.Parse(time.RFC3339, endTimeStr)
	if err != nil {
		log.Fatalf("Failed to parse time string: %v", err)
	}
	return timestamppb.New(t)
}
