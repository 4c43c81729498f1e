// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docflow/v1/docflow.proto

package docflowv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type IngestDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	FileName string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content  []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	RuleId   string                 `protobuf:"bytes,3,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	// Optional version pin; empty resolves the currently active version.
	RuleVersion   string `protobuf:"bytes,4,opt,name=rule_version,json=ruleVersion,proto3" json:"rule_version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentRequest) Reset() {
	*x = IngestDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentRequest) ProtoMessage() {}

func (x *IngestDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentRequest.ProtoReflect.Descriptor instead.
func (*IngestDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{0}
}

func (x *IngestDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *IngestDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *IngestDocumentRequest) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *IngestDocumentRequest) GetRuleVersion() string {
	if x != nil {
		return x.RuleVersion
	}
	return ""
}

type IngestDocumentResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	TaskId string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Status string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	// True when the fingerprint matched a previous completion and the result
	// was served without reprocessing.
	Instant       bool `protobuf:"varint,3,opt,name=instant,proto3" json:"instant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentResponse) Reset() {
	*x = IngestDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentResponse) ProtoMessage() {}

func (x *IngestDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentResponse.ProtoReflect.Descriptor instead.
func (*IngestDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{1}
}

func (x *IngestDocumentResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *IngestDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestDocumentResponse) GetInstant() bool {
	if x != nil {
		return x.Instant
	}
	return false
}

type AuditReason struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Page          int32                  `protobuf:"varint,4,opt,name=page,proto3" json:"page,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditReason) Reset() {
	*x = AuditReason{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditReason) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditReason) ProtoMessage() {}

func (x *AuditReason) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditReason.ProtoReflect.Descriptor instead.
func (*AuditReason) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{2}
}

func (x *AuditReason) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *AuditReason) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *AuditReason) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *AuditReason) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

type Task struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status      string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	RuleId      string                 `protobuf:"bytes,3,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	RuleVersion string                 `protobuf:"bytes,4,opt,name=rule_version,json=ruleVersion,proto3" json:"rule_version,omitempty"`
	PageCount   int32                  `protobuf:"varint,5,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	Instant     bool                   `protobuf:"varint,6,opt,name=instant,proto3" json:"instant,omitempty"`
	// JSON objects; field set depends on the rule.
	ExtractedData       string         `protobuf:"bytes,7,opt,name=extracted_data,json=extractedData,proto3" json:"extracted_data,omitempty"`
	ConfidenceScores    string         `protobuf:"bytes,8,opt,name=confidence_scores,json=confidenceScores,proto3" json:"confidence_scores,omitempty"`
	AuditReasons        []*AuditReason `protobuf:"bytes,9,rep,name=audit_reasons,json=auditReasons,proto3" json:"audit_reasons,omitempty"`
	RecognitionAttempts int32          `protobuf:"varint,10,opt,name=recognition_attempts,json=recognitionAttempts,proto3" json:"recognition_attempts,omitempty"`
	DeliveryAttempts    int32          `protobuf:"varint,11,opt,name=delivery_attempts,json=deliveryAttempts,proto3" json:"delivery_attempts,omitempty"`
	CreatedAt           string         `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt         string         `protobuf:"bytes,13,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{3}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Task) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *Task) GetRuleVersion() string {
	if x != nil {
		return x.RuleVersion
	}
	return ""
}

func (x *Task) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Task) GetInstant() bool {
	if x != nil {
		return x.Instant
	}
	return false
}

func (x *Task) GetExtractedData() string {
	if x != nil {
		return x.ExtractedData
	}
	return ""
}

func (x *Task) GetConfidenceScores() string {
	if x != nil {
		return x.ConfidenceScores
	}
	return ""
}

func (x *Task) GetAuditReasons() []*AuditReason {
	if x != nil {
		return x.AuditReasons
	}
	return nil
}

func (x *Task) GetRecognitionAttempts() int32 {
	if x != nil {
		return x.RecognitionAttempts
	}
	return 0
}

func (x *Task) GetDeliveryAttempts() int32 {
	if x != nil {
		return x.DeliveryAttempts
	}
	return 0
}

func (x *Task) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Task) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type PageSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageNo        int32                  `protobuf:"varint,1,opt,name=page_no,json=pageNo,proto3" json:"page_no,omitempty"`
	Engine        string                 `protobuf:"bytes,2,opt,name=engine,proto3" json:"engine,omitempty"`
	Fallback      bool                   `protobuf:"varint,3,opt,name=fallback,proto3" json:"fallback,omitempty"`
	Confidence    float32                `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	FailureReason string                 `protobuf:"bytes,5,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PageSummary) Reset() {
	*x = PageSummary{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PageSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PageSummary) ProtoMessage() {}

func (x *PageSummary) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PageSummary.ProtoReflect.Descriptor instead.
func (*PageSummary) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{4}
}

func (x *PageSummary) GetPageNo() int32 {
	if x != nil {
		return x.PageNo
	}
	return 0
}

func (x *PageSummary) GetEngine() string {
	if x != nil {
		return x.Engine
	}
	return ""
}

func (x *PageSummary) GetFallback() bool {
	if x != nil {
		return x.Fallback
	}
	return false
}

func (x *PageSummary) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *PageSummary) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

type GetTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskRequest) Reset() {
	*x = GetTaskRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskRequest) ProtoMessage() {}

func (x *GetTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskRequest.ProtoReflect.Descriptor instead.
func (*GetTaskRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{5}
}

func (x *GetTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type GetTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	Pages         []*PageSummary         `protobuf:"bytes,2,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskResponse) Reset() {
	*x = GetTaskResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskResponse) ProtoMessage() {}

func (x *GetTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskResponse.ProtoReflect.Descriptor instead.
func (*GetTaskResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{6}
}

func (x *GetTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

func (x *GetTaskResponse) GetPages() []*PageSummary {
	if x != nil {
		return x.Pages
	}
	return nil
}

type ListTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	RuleId        string                 `protobuf:"bytes,2,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{7}
}

func (x *ListTasksRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListTasksRequest) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *ListTasksRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{8}
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type CancelTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelTaskRequest) Reset() {
	*x = CancelTaskRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelTaskRequest) ProtoMessage() {}

func (x *CancelTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelTaskRequest.ProtoReflect.Descriptor instead.
func (*CancelTaskRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{9}
}

func (x *CancelTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type CancelTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelTaskResponse) Reset() {
	*x = CancelTaskResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelTaskResponse) ProtoMessage() {}

func (x *CancelTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelTaskResponse.ProtoReflect.Descriptor instead.
func (*CancelTaskResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{10}
}

type ApproveTaskRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	TaskId string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	// Reviewer-corrected field values, keyed by field name. Values are raw
	// strings coerced through the field's configured type.
	Corrections   map[string]string `protobuf:"bytes,2,rep,name=corrections,proto3" json:"corrections,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveTaskRequest) Reset() {
	*x = ApproveTaskRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveTaskRequest) ProtoMessage() {}

func (x *ApproveTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveTaskRequest.ProtoReflect.Descriptor instead.
func (*ApproveTaskRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{11}
}

func (x *ApproveTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *ApproveTaskRequest) GetCorrections() map[string]string {
	if x != nil {
		return x.Corrections
	}
	return nil
}

type ApproveTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveTaskResponse) Reset() {
	*x = ApproveTaskResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveTaskResponse) ProtoMessage() {}

func (x *ApproveTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveTaskResponse.ProtoReflect.Descriptor instead.
func (*ApproveTaskResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{12}
}

func (x *ApproveTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type RejectTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectTaskRequest) Reset() {
	*x = RejectTaskRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectTaskRequest) ProtoMessage() {}

func (x *RejectTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectTaskRequest.ProtoReflect.Descriptor instead.
func (*RejectTaskRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{13}
}

func (x *RejectTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *RejectTaskRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type RejectTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectTaskResponse) Reset() {
	*x = RejectTaskResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectTaskResponse) ProtoMessage() {}

func (x *RejectTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectTaskResponse.ProtoReflect.Descriptor instead.
func (*RejectTaskResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{14}
}

func (x *RejectTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ResubmitTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResubmitTaskRequest) Reset() {
	*x = ResubmitTaskRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResubmitTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResubmitTaskRequest) ProtoMessage() {}

func (x *ResubmitTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResubmitTaskRequest.ProtoReflect.Descriptor instead.
func (*ResubmitTaskRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{15}
}

func (x *ResubmitTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type ResubmitTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResubmitTaskResponse) Reset() {
	*x = ResubmitTaskResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResubmitTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResubmitTaskResponse) ProtoMessage() {}

func (x *ResubmitTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResubmitTaskResponse.ProtoReflect.Descriptor instead.
func (*ResubmitTaskResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{16}
}

func (x *ResubmitTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type RetryDeliveryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryDeliveryRequest) Reset() {
	*x = RetryDeliveryRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryDeliveryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryDeliveryRequest) ProtoMessage() {}

func (x *RetryDeliveryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryDeliveryRequest.ProtoReflect.Descriptor instead.
func (*RetryDeliveryRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{17}
}

func (x *RetryDeliveryRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type RetryDeliveryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryDeliveryResponse) Reset() {
	*x = RetryDeliveryResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryDeliveryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryDeliveryResponse) ProtoMessage() {}

func (x *RetryDeliveryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryDeliveryResponse.ProtoReflect.Descriptor instead.
func (*RetryDeliveryResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{18}
}

func (x *RetryDeliveryResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

var File_docflow_v1_docflow_proto protoreflect.FileDescriptor

const file_docflow_v1_docflow_proto_rawDesc = "" +
	"\n" +
	"\x18docflow/v1/docflow.proto\x12\n" +
	"docflow.v1\"\x8a\x01\n" +
	"\x15IngestDocumentRequest\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x17\n" +
	"\arule_id\x18\x03 \x01(\tR\x06ruleId\x12!\n" +
	"\frule_version\x18\x04 \x01(\tR\vruleVersion\"c\n" +
	"\x16IngestDocumentResponse\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x18\n" +
	"\ainstant\x18\x03 \x01(\bR\ainstant\"e\n" +
	"\vAuditReason\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x12\n" +
	"\x04page\x18\x04 \x01(\x05R\x04page\"\xd7\x03\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x17\n" +
	"\arule_id\x18\x03 \x01(\tR\x06ruleId\x12!\n" +
	"\frule_version\x18\x04 \x01(\tR\vruleVersion\x12\x1d\n" +
	"\n" +
	"page_count\x18\x05 \x01(\x05R\tpageCount\x12\x18\n" +
	"\ainstant\x18\x06 \x01(\bR\ainstant\x12%\n" +
	"\x0eextracted_data\x18\a \x01(\tR\rextractedData\x12+\n" +
	"\x11confidence_scores\x18\b \x01(\tR\x10confidenceScores\x12<\n" +
	"\raudit_reasons\x18\t \x03(\v2\x17.docflow.v1.AuditReasonR\fauditReasons\x121\n" +
	"\x14recognition_attempts\x18\n" +
	" \x01(\x05R\x13recognitionAttempts\x12+\n" +
	"\x11delivery_attempts\x18\v \x01(\x05R\x10deliveryAttempts\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12!\n" +
	"\fcompleted_at\x18\r \x01(\tR\vcompletedAt\"\xa1\x01\n" +
	"\vPageSummary\x12\x17\n" +
	"\apage_no\x18\x01 \x01(\x05R\x06pageNo\x12\x16\n" +
	"\x06engine\x18\x02 \x01(\tR\x06engine\x12\x1a\n" +
	"\bfallback\x18\x03 \x01(\bR\bfallback\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12%\n" +
	"\x0efailure_reason\x18\x05 \x01(\tR\rfailureReason\")\n" +
	"\x0eGetTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"f\n" +
	"\x0fGetTaskResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.docflow.v1.TaskR\x04task\x12-\n" +
	"\x05pages\x18\x02 \x03(\v2\x17.docflow.v1.PageSummaryR\x05pages\"Y\n" +
	"\x10ListTasksRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x17\n" +
	"\arule_id\x18\x02 \x01(\tR\x06ruleId\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\";\n" +
	"\x11ListTasksResponse\x12&\n" +
	"\x05tasks\x18\x01 \x03(\v2\x10.docflow.v1.TaskR\x05tasks\",\n" +
	"\x11CancelTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"\x14\n" +
	"\x12CancelTaskResponse\"\xc0\x01\n" +
	"\x12ApproveTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12Q\n" +
	"\vcorrections\x18\x02 \x03(\v2/.docflow.v1.ApproveTaskRequest.CorrectionsEntryR\vcorrections\x1a>\n" +
	"\x10CorrectionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\";\n" +
	"\x13ApproveTaskResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.docflow.v1.TaskR\x04task\"D\n" +
	"\x11RejectTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\":\n" +
	"\x12RejectTaskResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.docflow.v1.TaskR\x04task\".\n" +
	"\x13ResubmitTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"<\n" +
	"\x14ResubmitTaskResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.docflow.v1.TaskR\x04task\"/\n" +
	"\x14RetryDeliveryRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"=\n" +
	"\x15RetryDeliveryResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.docflow.v1.TaskR\x04task2k\n" +
	"\x10IngestionService\x12W\n" +
	"\x0eIngestDocument\x12!.docflow.v1.IngestDocumentRequest\x1a\".docflow.v1.IngestDocumentResponse2\xe8\x01\n" +
	"\vTaskService\x12B\n" +
	"\aGetTask\x12\x1a.docflow.v1.GetTaskRequest\x1a\x1b.docflow.v1.GetTaskResponse\x12H\n" +
	"\tListTasks\x12\x1c.docflow.v1.ListTasksRequest\x1a\x1d.docflow.v1.ListTasksResponse\x12K\n" +
	"\n" +
	"CancelTask\x12\x1d.docflow.v1.CancelTaskRequest\x1a\x1e.docflow.v1.CancelTaskResponse2\xd5\x02\n" +
	"\rReviewService\x12N\n" +
	"\vApproveTask\x12\x1e.docflow.v1.ApproveTaskRequest\x1a\x1f.docflow.v1.ApproveTaskResponse\x12K\n" +
	"\n" +
	"RejectTask\x12\x1d.docflow.v1.RejectTaskRequest\x1a\x1e.docflow.v1.RejectTaskResponse\x12Q\n" +
	"\fResubmitTask\x12\x1f.docflow.v1.ResubmitTaskRequest\x1a .docflow.v1.ResubmitTaskResponse\x12T\n" +
	"\rRetryDelivery\x12 .docflow.v1.RetryDeliveryRequest\x1a!.docflow.v1.RetryDeliveryResponseB=Z;github.com/docflowhq/docflow/gen/proto/docflow/v1;docflowv1b\x06proto3"

var (
	file_docflow_v1_docflow_proto_rawDescOnce sync.Once
	file_docflow_v1_docflow_proto_rawDescData []byte
)

func file_docflow_v1_docflow_proto_rawDescGZIP() []byte {
	file_docflow_v1_docflow_proto_rawDescOnce.Do(func() {
		file_docflow_v1_docflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)))
	})
	return file_docflow_v1_docflow_proto_rawDescData
}

var file_docflow_v1_docflow_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_docflow_v1_docflow_proto_goTypes = []any{
	(*IngestDocumentRequest)(nil),  // 0: docflow.v1.IngestDocumentRequest
	(*IngestDocumentResponse)(nil), // 1: docflow.v1.IngestDocumentResponse
	(*AuditReason)(nil),            // 2: docflow.v1.AuditReason
	(*Task)(nil),                   // 3: docflow.v1.Task
	(*PageSummary)(nil),            // 4: docflow.v1.PageSummary
	(*GetTaskRequest)(nil),         // 5: docflow.v1.GetTaskRequest
	(*GetTaskResponse)(nil),        // 6: docflow.v1.GetTaskResponse
	(*ListTasksRequest)(nil),       // 7: docflow.v1.ListTasksRequest
	(*ListTasksResponse)(nil),      // 8: docflow.v1.ListTasksResponse
	(*CancelTaskRequest)(nil),      // 9: docflow.v1.CancelTaskRequest
	(*CancelTaskResponse)(nil),     // 10: docflow.v1.CancelTaskResponse
	(*ApproveTaskRequest)(nil),     // 11: docflow.v1.ApproveTaskRequest
	(*ApproveTaskResponse)(nil),    // 12: docflow.v1.ApproveTaskResponse
	(*RejectTaskRequest)(nil),      // 13: docflow.v1.RejectTaskRequest
	(*RejectTaskResponse)(nil),     // 14: docflow.v1.RejectTaskResponse
	(*ResubmitTaskRequest)(nil),    // 15: docflow.v1.ResubmitTaskRequest
	(*ResubmitTaskResponse)(nil),   // 16: docflow.v1.ResubmitTaskResponse
	(*RetryDeliveryRequest)(nil),   // 17: docflow.v1.RetryDeliveryRequest
	(*RetryDeliveryResponse)(nil),  // 18: docflow.v1.RetryDeliveryResponse
	nil,                            // 19: docflow.v1.ApproveTaskRequest.CorrectionsEntry
}
var file_docflow_v1_docflow_proto_depIdxs = []int32{
	2,  // 0: docflow.v1.Task.audit_reasons:type_name -> docflow.v1.AuditReason
	3,  // 1: docflow.v1.GetTaskResponse.task:type_name -> docflow.v1.Task
	4,  // 2: docflow.v1.GetTaskResponse.pages:type_name -> docflow.v1.PageSummary
	3,  // 3: docflow.v1.ListTasksResponse.tasks:type_name -> docflow.v1.Task
	19, // 4: docflow.v1.ApproveTaskRequest.corrections:type_name -> docflow.v1.ApproveTaskRequest.CorrectionsEntry
	3,  // 5: docflow.v1.ApproveTaskResponse.task:type_name -> docflow.v1.Task
	3,  // 6: docflow.v1.RejectTaskResponse.task:type_name -> docflow.v1.Task
	3,  // 7: docflow.v1.ResubmitTaskResponse.task:type_name -> docflow.v1.Task
	3,  // 8: docflow.v1.RetryDeliveryResponse.task:type_name -> docflow.v1.Task
	0,  // 9: docflow.v1.IngestionService.IngestDocument:input_type -> docflow.v1.IngestDocumentRequest
	5,  // 10: docflow.v1.TaskService.GetTask:input_type -> docflow.v1.GetTaskRequest
	7,  // 11: docflow.v1.TaskService.ListTasks:input_type -> docflow.v1.ListTasksRequest
	9,  // 12: docflow.v1.TaskService.CancelTask:input_type -> docflow.v1.CancelTaskRequest
	11, // 13: docflow.v1.ReviewService.ApproveTask:input_type -> docflow.v1.ApproveTaskRequest
	13, // 14: docflow.v1.ReviewService.RejectTask:input_type -> docflow.v1.RejectTaskRequest
	15, // 15: docflow.v1.ReviewService.ResubmitTask:input_type -> docflow.v1.ResubmitTaskRequest
	17, // 16: docflow.v1.ReviewService.RetryDelivery:input_type -> docflow.v1.RetryDeliveryRequest
	1,  // 17: docflow.v1.IngestionService.IngestDocument:output_type -> docflow.v1.IngestDocumentResponse
	6,  // 18: docflow.v1.TaskService.GetTask:output_type -> docflow.v1.GetTaskResponse
	8,  // 19: docflow.v1.TaskService.ListTasks:output_type -> docflow.v1.ListTasksResponse
	10, // 20: docflow.v1.TaskService.CancelTask:output_type -> docflow.v1.CancelTaskResponse
	12, // 21: docflow.v1.ReviewService.ApproveTask:output_type -> docflow.v1.ApproveTaskResponse
	14, // 22: docflow.v1.ReviewService.RejectTask:output_type -> docflow.v1.RejectTaskResponse
	16, // 23: docflow.v1.ReviewService.ResubmitTask:output_type -> docflow.v1.ResubmitTaskResponse
	18, // 24: docflow.v1.ReviewService.RetryDelivery:output_type -> docflow.v1.RetryDeliveryResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_docflow_v1_docflow_proto_init() }
func file_docflow_v1_docflow_proto_init() {
	if File_docflow_v1_docflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_docflow_v1_docflow_proto_goTypes,
		DependencyIndexes: file_docflow_v1_docflow_proto_depIdxs,
		MessageInfos:      file_docflow_v1_docflow_proto_msgTypes,
	}.Build()
	File_docflow_v1_docflow_proto = out.File
	file_docflow_v1_docflow_proto_goTypes = nil
	file_docflow_v1_docflow_proto_depIdxs = nil
}
