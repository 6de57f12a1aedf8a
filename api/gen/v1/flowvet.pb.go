// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: v1/flowvet.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// FiveTuple carries the raw addressing fields of a captured packet.
// Addresses travel as raw bytes; validation happens when the engine
// materializes a flow record from them.
type FiveTuple struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SrcIp         []byte                 `protobuf:"bytes,1,opt,name=src_ip,json=srcIp,proto3" json:"src_ip,omitempty"`
	DstIp         []byte                 `protobuf:"bytes,2,opt,name=dst_ip,json=dstIp,proto3" json:"dst_ip,omitempty"`
	SrcPort       uint32                 `protobuf:"varint,3,opt,name=src_port,json=srcPort,proto3" json:"src_port,omitempty"`
	DstPort       uint32                 `protobuf:"varint,4,opt,name=dst_port,json=dstPort,proto3" json:"dst_port,omitempty"`
	Protocol      uint32                 `protobuf:"varint,5,opt,name=protocol,proto3" json:"protocol,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FiveTuple) Reset() {
	*x = FiveTuple{}
	mi := &file_v1_flowvet_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FiveTuple) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FiveTuple) ProtoMessage() {}

func (x *FiveTuple) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FiveTuple.ProtoReflect.Descriptor instead.
func (*FiveTuple) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{0}
}

func (x *FiveTuple) GetSrcIp() []byte {
	if x != nil {
		return x.SrcIp
	}
	return nil
}

func (x *FiveTuple) GetDstIp() []byte {
	if x != nil {
		return x.DstIp
	}
	return nil
}

func (x *FiveTuple) GetSrcPort() uint32 {
	if x != nil {
		return x.SrcPort
	}
	return 0
}

func (x *FiveTuple) GetDstPort() uint32 {
	if x != nil {
		return x.DstPort
	}
	return 0
}

func (x *FiveTuple) GetProtocol() uint32 {
	if x != nil {
		return x.Protocol
	}
	return 0
}

type PacketInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	FiveTuple     *FiveTuple             `protobuf:"bytes,2,opt,name=five_tuple,json=fiveTuple,proto3" json:"five_tuple,omitempty"`
	Length        uint64                 `protobuf:"varint,3,opt,name=length,proto3" json:"length,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PacketInfo) Reset() {
	*x = PacketInfo{}
	mi := &file_v1_flowvet_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PacketInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PacketInfo) ProtoMessage() {}

func (x *PacketInfo) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PacketInfo.ProtoReflect.Descriptor instead.
func (*PacketInfo) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{1}
}

func (x *PacketInfo) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

func (x *PacketInfo) GetFiveTuple() *FiveTuple {
	if x != nil {
		return x.FiveTuple
	}
	return nil
}

func (x *PacketInfo) GetLength() uint64 {
	if x != nil {
		return x.Length
	}
	return 0
}

type HealthCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthCheckRequest) Reset() {
	*x = HealthCheckRequest{}
	mi := &file_v1_flowvet_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthCheckRequest) ProtoMessage() {}

func (x *HealthCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthCheckRequest.ProtoReflect.Descriptor instead.
func (*HealthCheckRequest) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{2}
}

type HealthCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthCheckResponse) Reset() {
	*x = HealthCheckResponse{}
	mi := &file_v1_flowvet_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthCheckResponse) ProtoMessage() {}

func (x *HealthCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthCheckResponse.ProtoReflect.Descriptor instead.
func (*HealthCheckResponse) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{3}
}

func (x *HealthCheckResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type AggregationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskName      string                 `protobuf:"bytes,1,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	EndTime       *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AggregationRequest) Reset() {
	*x = AggregationRequest{}
	mi := &file_v1_flowvet_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AggregationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AggregationRequest) ProtoMessage() {}

func (x *AggregationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AggregationRequest.ProtoReflect.Descriptor instead.
func (*AggregationRequest) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{4}
}

func (x *AggregationRequest) GetTaskName() string {
	if x != nil {
		return x.TaskName
	}
	return ""
}

func (x *AggregationRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

type TaskSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskName      string                 `protobuf:"bytes,1,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	TotalBytes    uint64                 `protobuf:"varint,2,opt,name=total_bytes,json=totalBytes,proto3" json:"total_bytes,omitempty"`
	TotalPackets  uint64                 `protobuf:"varint,3,opt,name=total_packets,json=totalPackets,proto3" json:"total_packets,omitempty"`
	FlowCount     uint64                 `protobuf:"varint,4,opt,name=flow_count,json=flowCount,proto3" json:"flow_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskSummary) Reset() {
	*x = TaskSummary{}
	mi := &file_v1_flowvet_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskSummary) ProtoMessage() {}

func (x *TaskSummary) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskSummary.ProtoReflect.Descriptor instead.
func (*TaskSummary) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{5}
}

func (x *TaskSummary) GetTaskName() string {
	if x != nil {
		return x.TaskName
	}
	return ""
}

func (x *TaskSummary) GetTotalBytes() uint64 {
	if x != nil {
		return x.TotalBytes
	}
	return 0
}

func (x *TaskSummary) GetTotalPackets() uint64 {
	if x != nil {
		return x.TotalPackets
	}
	return 0
}

func (x *TaskSummary) GetFlowCount() uint64 {
	if x != nil {
		return x.FlowCount
	}
	return 0
}

type QueryTotalCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summaries     []*TaskSummary         `protobuf:"bytes,1,rep,name=summaries,proto3" json:"summaries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryTotalCountsResponse) Reset() {
	*x = QueryTotalCountsResponse{}
	mi := &file_v1_flowvet_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryTotalCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryTotalCountsResponse) ProtoMessage() {}

func (x *QueryTotalCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryTotalCountsResponse.ProtoReflect.Descriptor instead.
func (*QueryTotalCountsResponse) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{6}
}

func (x *QueryTotalCountsResponse) GetSummaries() []*TaskSummary {
	if x != nil {
		return x.Summaries
	}
	return nil
}

type TraceFlowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskName      string                 `protobuf:"bytes,1,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	FlowKeys      map[string]string      `protobuf:"bytes,2,rep,name=flow_keys,json=flowKeys,proto3" json:"flow_keys,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	EndTime       *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TraceFlowRequest) Reset() {
	*x = TraceFlowRequest{}
	mi := &file_v1_flowvet_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TraceFlowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TraceFlowRequest) ProtoMessage() {}

func (x *TraceFlowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TraceFlowRequest.ProtoReflect.Descriptor instead.
func (*TraceFlowRequest) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{7}
}

func (x *TraceFlowRequest) GetTaskName() string {
	if x != nil {
		return x.TaskName
	}
	return ""
}

func (x *TraceFlowRequest) GetFlowKeys() map[string]string {
	if x != nil {
		return x.FlowKeys
	}
	return nil
}

func (x *TraceFlowRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

type FlowLifecycle struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FirstSeen     *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=first_seen,json=firstSeen,proto3" json:"first_seen,omitempty"`
	LastSeen      *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`
	TotalPackets  uint64                 `protobuf:"varint,3,opt,name=total_packets,json=totalPackets,proto3" json:"total_packets,omitempty"`
	TotalBytes    uint64                 `protobuf:"varint,4,opt,name=total_bytes,json=totalBytes,proto3" json:"total_bytes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlowLifecycle) Reset() {
	*x = FlowLifecycle{}
	mi := &file_v1_flowvet_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlowLifecycle) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlowLifecycle) ProtoMessage() {}

func (x *FlowLifecycle) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlowLifecycle.ProtoReflect.Descriptor instead.
func (*FlowLifecycle) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{8}
}

func (x *FlowLifecycle) GetFirstSeen() *timestamppb.Timestamp {
	if x != nil {
		return x.FirstSeen
	}
	return nil
}

func (x *FlowLifecycle) GetLastSeen() *timestamppb.Timestamp {
	if x != nil {
		return x.LastSeen
	}
	return nil
}

func (x *FlowLifecycle) GetTotalPackets() uint64 {
	if x != nil {
		return x.TotalPackets
	}
	return 0
}

func (x *FlowLifecycle) GetTotalBytes() uint64 {
	if x != nil {
		return x.TotalBytes
	}
	return 0
}

type TraceFlowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lifecycle     *FlowLifecycle         `protobuf:"bytes,1,opt,name=lifecycle,proto3" json:"lifecycle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TraceFlowResponse) Reset() {
	*x = TraceFlowResponse{}
	mi := &file_v1_flowvet_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TraceFlowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TraceFlowResponse) ProtoMessage() {}

func (x *TraceFlowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TraceFlowResponse.ProtoReflect.Descriptor instead.
func (*TraceFlowResponse) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{9}
}

func (x *TraceFlowResponse) GetLifecycle() *FlowLifecycle {
	if x != nil {
		return x.Lifecycle
	}
	return nil
}

type RejectSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	EndTime       *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectSummaryRequest) Reset() {
	*x = RejectSummaryRequest{}
	mi := &file_v1_flowvet_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectSummaryRequest) ProtoMessage() {}

func (x *RejectSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectSummaryRequest.ProtoReflect.Descriptor instead.
func (*RejectSummaryRequest) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{10}
}

func (x *RejectSummaryRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *RejectSummaryRequest) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

type RejectEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	Count         uint64                 `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectEntry) Reset() {
	*x = RejectEntry{}
	mi := &file_v1_flowvet_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectEntry) ProtoMessage() {}

func (x *RejectEntry) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectEntry.ProtoReflect.Descriptor instead.
func (*RejectEntry) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{11}
}

func (x *RejectEntry) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *RejectEntry) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *RejectEntry) GetCount() uint64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type RejectSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*RejectEntry         `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectSummaryResponse) Reset() {
	*x = RejectSummaryResponse{}
	mi := &file_v1_flowvet_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectSummaryResponse) ProtoMessage() {}

func (x *RejectSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectSummaryResponse.ProtoReflect.Descriptor instead.
func (*RejectSummaryResponse) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{12}
}

func (x *RejectSummaryResponse) GetEntries() []*RejectEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ValidateRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Name of a registered validator, e.g. "ipv4".
	Validator     string `protobuf:"bytes,1,opt,name=validator,proto3" json:"validator,omitempty"`
	Value         string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateRequest) Reset() {
	*x = ValidateRequest{}
	mi := &file_v1_flowvet_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateRequest) ProtoMessage() {}

func (x *ValidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateRequest.ProtoReflect.Descriptor instead.
func (*ValidateRequest) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{13}
}

func (x *ValidateRequest) GetValidator() string {
	if x != nil {
		return x.Validator
	}
	return ""
}

func (x *ValidateRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ValidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Valid         bool                   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateResponse) Reset() {
	*x = ValidateResponse{}
	mi := &file_v1_flowvet_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateResponse) ProtoMessage() {}

func (x *ValidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_flowvet_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateResponse.ProtoReflect.Descriptor instead.
func (*ValidateResponse) Descriptor() ([]byte, []int) {
	return file_v1_flowvet_proto_rawDescGZIP(), []int{14}
}

func (x *ValidateResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *ValidateResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

var File_v1_flowvet_proto protoreflect.FileDescriptor

const file_v1_flowvet_proto_rawDesc = "" +
	"\n" +
	"\x10v1/flowvet.proto\x12\n" +
	"flowvet.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x8b\x01\n" +
	"\tFiveTuple\x12\x15\n" +
	"\x06src_ip\x18\x01 \x01(\fR\x05srcIp\x12\x15\n" +
	"\x06dst_ip\x18\x02 \x01(\fR\x05dstIp\x12\x19\n" +
	"\bsrc_port\x18\x03 \x01(\rR\asrcPort\x12\x19\n" +
	"\bdst_port\x18\x04 \x01(\rR\adstPort\x12\x1a\n" +
	"\bprotocol\x18\x05 \x01(\rR\bprotocol\"\x94\x01\n" +
	"\n" +
	"PacketInfo\x128\n" +
	"\ttimestamp\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp\x124\n" +
	"\n" +
	"five_tuple\x18\x02 \x01(\v2\x15.flowvet.v1.FiveTupleR\tfiveTuple\x12\x16\n" +
	"\x06length\x18\x03 \x01(\x04R\x06length\"\x14\n" +
	"\x12HealthCheckRequest\"-\n" +
	"\x13HealthCheckResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"h\n" +
	"\x12AggregationRequest\x12\x1b\n" +
	"\ttask_name\x18\x01 \x01(\tR\btaskName\x125\n" +
	"\bend_time\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\aendTime\"\x8f\x01\n" +
	"\vTaskSummary\x12\x1b\n" +
	"\ttask_name\x18\x01 \x01(\tR\btaskName\x12\x1f\n" +
	"\vtotal_bytes\x18\x02 \x01(\x04R\n" +
	"totalBytes\x12#\n" +
	"\rtotal_packets\x18\x03 \x01(\x04R\ftotalPackets\x12\x1d\n" +
	"\n" +
	"flow_count\x18\x04 \x01(\x04R\tflowCount\"Q\n" +
	"\x18QueryTotalCountsResponse\x125\n" +
	"\tsummaries\x18\x01 \x03(\v2\x17.flowvet.v1.TaskSummaryR\tsummaries\"\xec\x01\n" +
	"\x10TraceFlowRequest\x12\x1b\n" +
	"\ttask_name\x18\x01 \x01(\tR\btaskName\x12G\n" +
	"\tflow_keys\x18\x02 \x03(\v2*.flowvet.v1.TraceFlowRequest.FlowKeysEntryR\bflowKeys\x125\n" +
	"\bend_time\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\aendTime\x1a;\n" +
	"\rFlowKeysEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xc9\x01\n" +
	"\rFlowLifecycle\x129\n" +
	"\n" +
	"first_seen\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\tfirstSeen\x127\n" +
	"\tlast_seen\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\blastSeen\x12#\n" +
	"\rtotal_packets\x18\x03 \x01(\x04R\ftotalPackets\x12\x1f\n" +
	"\vtotal_bytes\x18\x04 \x01(\x04R\n" +
	"totalBytes\"L\n" +
	"\x11TraceFlowResponse\x127\n" +
	"\tlifecycle\x18\x01 \x01(\v2\x19.flowvet.v1.FlowLifecycleR\tlifecycle\"c\n" +
	"\x14RejectSummaryRequest\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x125\n" +
	"\bend_time\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\aendTime\"Q\n" +
	"\vRejectEntry\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12\x14\n" +
	"\x05count\x18\x03 \x01(\x04R\x05count\"J\n" +
	"\x15RejectSummaryResponse\x121\n" +
	"\aentries\x18\x01 \x03(\v2\x17.flowvet.v1.RejectEntryR\aentries\"E\n" +
	"\x0fValidateRequest\x12\x1c\n" +
	"\tvalidator\x18\x01 \x01(\tR\tvalidator\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"@\n" +
	"\x10ValidateResponse\x12\x14\n" +
	"\x05valid\x18\x01 \x01(\bR\x05valid\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason2\xd6\x02\n" +
	"\fQueryService\x12N\n" +
	"\vHealthCheck\x12\x1e.flowvet.v1.HealthCheckRequest\x1a\x1f.flowvet.v1.HealthCheckResponse\x12V\n" +
	"\x0eAggregateFlows\x12\x1e.flowvet.v1.AggregationRequest\x1a$.flowvet.v1.QueryTotalCountsResponse\x12H\n" +
	"\tTraceFlow\x12\x1c.flowvet.v1.TraceFlowRequest\x1a\x1d.flowvet.v1.TraceFlowResponse\x12T\n" +
	"\rRejectSummary\x12 .flowvet.v1.RejectSummaryRequest\x1a!.flowvet.v1.RejectSummaryResponse2Z\n" +
	"\x11ValidationService\x12E\n" +
	"\bValidate\x12\x1b.flowvet.v1.ValidateRequest\x1a\x1c.flowvet.v1.ValidateResponseB\x17Z\x15FlowVet/api/gen/v1;v1b\x06proto3"

var (
	file_v1_flowvet_proto_rawDescOnce sync.Once
	file_v1_flowvet_proto_rawDescData []byte
)

func file_v1_flowvet_proto_rawDescGZIP() []byte {
	file_v1_flowvet_proto_rawDescOnce.Do(func() {
		file_v1_flowvet_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_v1_flowvet_proto_rawDesc), len(file_v1_flowvet_proto_rawDesc)))
	})
	return file_v1_flowvet_proto_rawDescData
}

var file_v1_flowvet_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_v1_flowvet_proto_goTypes = []any{
	(*FiveTuple)(nil),                // 0: flowvet.v1.FiveTuple
	(*PacketInfo)(nil),               // 1: flowvet.v1.PacketInfo
	(*HealthCheckRequest)(nil),       // 2: flowvet.v1.HealthCheckRequest
	(*HealthCheckResponse)(nil),      // 3: flowvet.v1.HealthCheckResponse
	(*AggregationRequest)(nil),       // 4: flowvet.v1.AggregationRequest
	(*TaskSummary)(nil),              // 5: flowvet.v1.TaskSummary
	(*QueryTotalCountsResponse)(nil), // 6: flowvet.v1.QueryTotalCountsResponse
	(*TraceFlowRequest)(nil),         // 7: flowvet.v1.TraceFlowRequest
	(*FlowLifecycle)(nil),            // 8: flowvet.v1.FlowLifecycle
	(*TraceFlowResponse)(nil),        // 9: flowvet.v1.TraceFlowResponse
	(*RejectSummaryRequest)(nil),     // 10: flowvet.v1.RejectSummaryRequest
	(*RejectEntry)(nil),              // 11: flowvet.v1.RejectEntry
	(*RejectSummaryResponse)(nil),    // 12: flowvet.v1.RejectSummaryResponse
	(*ValidateRequest)(nil),          // 13: flowvet.v1.ValidateRequest
	(*ValidateResponse)(nil),         // 14: flowvet.v1.ValidateResponse
	nil,                              // 15: flowvet.v1.TraceFlowRequest.FlowKeysEntry
	(*timestamppb.Timestamp)(nil),    // 16: google.protobuf.Timestamp
}
var file_v1_flowvet_proto_depIdxs = []int32{
	16, // 0: flowvet.v1.PacketInfo.timestamp:type_name -> google.protobuf.Timestamp
	0,  // 1: flowvet.v1.PacketInfo.five_tuple:type_name -> flowvet.v1.FiveTuple
	16, // 2: flowvet.v1.AggregationRequest.end_time:type_name -> google.protobuf.Timestamp
	5,  // 3: flowvet.v1.QueryTotalCountsResponse.summaries:type_name -> flowvet.v1.TaskSummary
	15, // 4: flowvet.v1.TraceFlowRequest.flow_keys:type_name -> flowvet.v1.TraceFlowRequest.FlowKeysEntry
	16, // 5: flowvet.v1.TraceFlowRequest.end_time:type_name -> google.protobuf.Timestamp
	16, // 6: flowvet.v1.FlowLifecycle.first_seen:type_name -> google.protobuf.Timestamp
	16, // 7: flowvet.v1.FlowLifecycle.last_seen:type_name -> google.protobuf.Timestamp
	8,  // 8: flowvet.v1.TraceFlowResponse.lifecycle:type_name -> flowvet.v1.FlowLifecycle
	16, // 9: flowvet.v1.RejectSummaryRequest.end_time:type_name -> google.protobuf.Timestamp
	11, // 10: flowvet.v1.RejectSummaryResponse.entries:type_name -> flowvet.v1.RejectEntry
	2,  // 11: flowvet.v1.QueryService.HealthCheck:input_type -> flowvet.v1.HealthCheckRequest
	4,  // 12: flowvet.v1.QueryService.AggregateFlows:input_type -> flowvet.v1.AggregationRequest
	7,  // 13: flowvet.v1.QueryService.TraceFlow:input_type -> flowvet.v1.TraceFlowRequest
	10, // 14: flowvet.v1.QueryService.RejectSummary:input_type -> flowvet.v1.RejectSummaryRequest
	13, // 15: flowvet.v1.ValidationService.Validate:input_type -> flowvet.v1.ValidateRequest
	3,  // 16: flowvet.v1.QueryService.HealthCheck:output_type -> flowvet.v1.HealthCheckResponse
	6,  // 17: flowvet.v1.QueryService.AggregateFlows:output_type -> flowvet.v1.QueryTotalCountsResponse
	9,  // 18: flowvet.v1.QueryService.TraceFlow:output_type -> flowvet.v1.TraceFlowResponse
	12, // 19: flowvet.v1.QueryService.RejectSummary:output_type -> flowvet.v1.RejectSummaryResponse
	14, // 20: flowvet.v1.ValidationService.Validate:output_type -> flowvet.v1.ValidateResponse
	16, // [16:21] is the sub-list for method output_type
	11, // [11:16] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_v1_flowvet_proto_init() }
func file_v1_flowvet_proto_init() {
	if File_v1_flowvet_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_v1_flowvet_proto_rawDesc), len(file_v1_flowvet_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_v1_flowvet_proto_goTypes,
		DependencyIndexes: file_v1_flowvet_proto_depIdxs,
		MessageInfos:      file_v1_flowvet_proto_msgTypes,
	}.Build()
	File_v1_flowvet_proto = out.File
	file_v1_flowvet_proto_goTypes = nil
	file_v1_flowvet_proto_depIdxs = nil
}
