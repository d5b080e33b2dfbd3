// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: verify/v1/verify.proto

package verifypb

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

type ExtractedFields struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DistanceKm      float64                `protobuf:"fixed64,1,opt,name=distance_km,json=distanceKm,proto3" json:"distance_km,omitempty"`
	ChargeAmountKwh float64                `protobuf:"fixed64,2,opt,name=charge_amount_kwh,json=chargeAmountKwh,proto3" json:"charge_amount_kwh,omitempty"`
	ChargeFeeWon    float64                `protobuf:"fixed64,3,opt,name=charge_fee_won,json=chargeFeeWon,proto3" json:"charge_fee_won,omitempty"`
	PriceWon        float64                `protobuf:"fixed64,4,opt,name=price_won,json=priceWon,proto3" json:"price_won,omitempty"`
	ApprovalNumber  string                 `protobuf:"bytes,5,opt,name=approval_number,json=approvalNumber,proto3" json:"approval_number,omitempty"`
	BikeNumber      string                 `protobuf:"bytes,6,opt,name=bike_number,json=bikeNumber,proto3" json:"bike_number,omitempty"`
	MerchantName    string                 `protobuf:"bytes,7,opt,name=merchant_name,json=merchantName,proto3" json:"merchant_name,omitempty"`
	StartTime       string                 `protobuf:"bytes,8,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime         string                 `protobuf:"bytes,9,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExtractedFields) Reset() {
	*x = ExtractedFields{}
	mi := &file_verify_v1_verify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedFields) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedFields) ProtoMessage() {}

func (x *ExtractedFields) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedFields.ProtoReflect.Descriptor instead.
func (*ExtractedFields) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractedFields) GetDistanceKm() float64 {
	if x != nil {
		return x.DistanceKm
	}
	return 0
}

func (x *ExtractedFields) GetChargeAmountKwh() float64 {
	if x != nil {
		return x.ChargeAmountKwh
	}
	return 0
}

func (x *ExtractedFields) GetChargeFeeWon() float64 {
	if x != nil {
		return x.ChargeFeeWon
	}
	return 0
}

func (x *ExtractedFields) GetPriceWon() float64 {
	if x != nil {
		return x.PriceWon
	}
	return 0
}

func (x *ExtractedFields) GetApprovalNumber() string {
	if x != nil {
		return x.ApprovalNumber
	}
	return ""
}

func (x *ExtractedFields) GetBikeNumber() string {
	if x != nil {
		return x.BikeNumber
	}
	return ""
}

func (x *ExtractedFields) GetMerchantName() string {
	if x != nil {
		return x.MerchantName
	}
	return ""
}

func (x *ExtractedFields) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *ExtractedFields) GetEndTime() string {
	if x != nil {
		return x.EndTime
	}
	return ""
}

type RecognizeReceiptRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ActivityType      string                 `protobuf:"bytes,1,opt,name=activity_type,json=activityType,proto3" json:"activity_type,omitempty"` // "bike" | "ev" | "z"
	ImagePath         string                 `protobuf:"bytes,2,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`          // server-side path of the uploaded photo
	MemberId          string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	MemberChallengeId *int32                 `protobuf:"varint,4,opt,name=member_challenge_id,json=memberChallengeId,proto3,oneof" json:"member_challenge_id,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RecognizeReceiptRequest) Reset() {
	*x = RecognizeReceiptRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeReceiptRequest) ProtoMessage() {}

func (x *RecognizeReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeReceiptRequest.ProtoReflect.Descriptor instead.
func (*RecognizeReceiptRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{1}
}

func (x *RecognizeReceiptRequest) GetActivityType() string {
	if x != nil {
		return x.ActivityType
	}
	return ""
}

func (x *RecognizeReceiptRequest) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *RecognizeReceiptRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *RecognizeReceiptRequest) GetMemberChallengeId() int32 {
	if x != nil && x.MemberChallengeId != nil {
		return *x.MemberChallengeId
	}
	return 0
}

type RecognizeReceiptResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	JobId            string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Fields           *ExtractedFields       `protobuf:"bytes,2,opt,name=fields,proto3" json:"fields,omitempty"`
	DetectedCategory string                 `protobuf:"bytes,3,opt,name=detected_category,json=detectedCategory,proto3" json:"detected_category,omitempty"` // "recycle" | "zero" | "" (store type only)
	KeywordsMatched  bool                   `protobuf:"varint,4,opt,name=keywords_matched,json=keywordsMatched,proto3" json:"keywords_matched,omitempty"`
	MissingFields    []string               `protobuf:"bytes,5,rep,name=missing_fields,json=missingFields,proto3" json:"missing_fields,omitempty"`
	CanSubmit        bool                   `protobuf:"varint,6,opt,name=can_submit,json=canSubmit,proto3" json:"can_submit,omitempty"`
	Confidence       float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Message          string                 `protobuf:"bytes,8,opt,name=message,proto3" json:"message,omitempty"` // user-facing hint when not submittable
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RecognizeReceiptResponse) Reset() {
	*x = RecognizeReceiptResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeReceiptResponse) ProtoMessage() {}

func (x *RecognizeReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeReceiptResponse.ProtoReflect.Descriptor instead.
func (*RecognizeReceiptResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{2}
}

func (x *RecognizeReceiptResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *RecognizeReceiptResponse) GetFields() *ExtractedFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *RecognizeReceiptResponse) GetDetectedCategory() string {
	if x != nil {
		return x.DetectedCategory
	}
	return ""
}

func (x *RecognizeReceiptResponse) GetKeywordsMatched() bool {
	if x != nil {
		return x.KeywordsMatched
	}
	return false
}

func (x *RecognizeReceiptResponse) GetMissingFields() []string {
	if x != nil {
		return x.MissingFields
	}
	return nil
}

func (x *RecognizeReceiptResponse) GetCanSubmit() bool {
	if x != nil {
		return x.CanSubmit
	}
	return false
}

func (x *RecognizeReceiptResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *RecognizeReceiptResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type SubmitVerificationRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	JobId             string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	MemberChallengeId *int32                 `protobuf:"varint,2,opt,name=member_challenge_id,json=memberChallengeId,proto3,oneof" json:"member_challenge_id,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SubmitVerificationRequest) Reset() {
	*x = SubmitVerificationRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitVerificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitVerificationRequest) ProtoMessage() {}

func (x *SubmitVerificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitVerificationRequest.ProtoReflect.Descriptor instead.
func (*SubmitVerificationRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitVerificationRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitVerificationRequest) GetMemberChallengeId() int32 {
	if x != nil && x.MemberChallengeId != nil {
		return *x.MemberChallengeId
	}
	return 0
}

type SubmitVerificationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Duplicate     bool                   `protobuf:"varint,3,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitVerificationResponse) Reset() {
	*x = SubmitVerificationResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitVerificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitVerificationResponse) ProtoMessage() {}

func (x *SubmitVerificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitVerificationResponse.ProtoReflect.Descriptor instead.
func (*SubmitVerificationResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitVerificationResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SubmitVerificationResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *SubmitVerificationResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type Job struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActivityType     string                 `protobuf:"bytes,2,opt,name=activity_type,json=activityType,proto3" json:"activity_type,omitempty"`
	Status           string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt        string                 `protobuf:"bytes,4,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt       string                 `protobuf:"bytes,5,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	DetectedCategory string                 `protobuf:"bytes,6,opt,name=detected_category,json=detectedCategory,proto3" json:"detected_category,omitempty"`
	KeywordsMatched  bool                   `protobuf:"varint,7,opt,name=keywords_matched,json=keywordsMatched,proto3" json:"keywords_matched,omitempty"`
	MissingFields    []string               `protobuf:"bytes,8,rep,name=missing_fields,json=missingFields,proto3" json:"missing_fields,omitempty"`
	Confidence       float32                `protobuf:"fixed32,9,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_verify_v1_verify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{5}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetActivityType() string {
	if x != nil {
		return x.ActivityType
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *Job) GetDetectedCategory() string {
	if x != nil {
		return x.DetectedCategory
	}
	return ""
}

func (x *Job) GetKeywordsMatched() bool {
	if x != nil {
		return x.KeywordsMatched
	}
	return false
}

func (x *Job) GetMissingFields() []string {
	if x != nil {
		return x.MissingFields
	}
	return nil
}

func (x *Job) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{6}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{7}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActivityType  string                 `protobuf:"bytes,1,opt,name=activity_type,json=activityType,proto3" json:"activity_type,omitempty"` // empty = all
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`             // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`                   // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{8}
}

func (x *ListJobsRequest) GetActivityType() string {
	if x != nil {
		return x.ActivityType
	}
	return ""
}

func (x *ListJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{9}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActivityType  string                 `protobuf:"bytes,1,opt,name=activity_type,json=activityType,proto3" json:"activity_type,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{10}
}

func (x *ExportJobsRequest) GetActivityType() string {
	if x != nil {
		return x.ActivityType
	}
	return ""
}

func (x *ExportJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{11}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_verify_v1_verify_proto protoreflect.FileDescriptor

const file_verify_v1_verify_proto_rawDesc = "" +
	"\n" +
	"\x16verify/v1/verify.proto\x12\tverify.v1\"\xca\x02\n" +
	"\x0fExtractedFields\x12\x1f\n" +
	"\vdistance_km\x18\x01 \x01(\x01R\n" +
	"distanceKm\x12*\n" +
	"\x11charge_amount_kwh\x18\x02 \x01(\x01R\x0fchargeAmountKwh\x12$\n" +
	"\x0echarge_fee_won\x18\x03 \x01(\x01R\fchargeFeeWon\x12\x1b\n" +
	"\tprice_won\x18\x04 \x01(\x01R\bpriceWon\x12'\n" +
	"\x0fapproval_number\x18\x05 \x01(\tR\x0eapprovalNumber\x12\x1f\n" +
	"\vbike_number\x18\x06 \x01(\tR\n" +
	"bikeNumber\x12#\n" +
	"\rmerchant_name\x18\a \x01(\tR\fmerchantName\x12\x1d\n" +
	"\n" +
	"start_time\x18\b \x01(\tR\tstartTime\x12\x19\n" +
	"\bend_time\x18\t \x01(\tR\aendTime\"\xc7\x01\n" +
	"\x17RecognizeReceiptRequest\x12#\n" +
	"\ractivity_type\x18\x01 \x01(\tR\factivityType\x12\x1d\n" +
	"\n" +
	"image_path\x18\x02 \x01(\tR\timagePath\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x123\n" +
	"\x13member_challenge_id\x18\x04 \x01(\x05H\x00R\x11memberChallengeId\x88\x01\x01B\x16\n" +
	"\x14_member_challenge_id\"\xbd\x02\n" +
	"\x18RecognizeReceiptResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x122\n" +
	"\x06fields\x18\x02 \x01(\v2\x1a.verify.v1.ExtractedFieldsR\x06fields\x12+\n" +
	"\x11detected_category\x18\x03 \x01(\tR\x10detectedCategory\x12)\n" +
	"\x10keywords_matched\x18\x04 \x01(\bR\x0fkeywordsMatched\x12%\n" +
	"\x0emissing_fields\x18\x05 \x03(\tR\rmissingFields\x12\x1d\n" +
	"\n" +
	"can_submit\x18\x06 \x01(\bR\tcanSubmit\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\x12\x18\n" +
	"\amessage\x18\b \x01(\tR\amessage\"\x7f\n" +
	"\x19SubmitVerificationRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x123\n" +
	"\x13member_challenge_id\x18\x02 \x01(\x05H\x00R\x11memberChallengeId\x88\x01\x01B\x16\n" +
	"\x14_member_challenge_id\"l\n" +
	"\x1aSubmitVerificationResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x1c\n" +
	"\tduplicate\x18\x03 \x01(\bR\tduplicate\"\xd6\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\ractivity_type\x18\x02 \x01(\tR\factivityType\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x04 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x05 \x01(\tR\n" +
	"finishedAt\x12+\n" +
	"\x11detected_category\x18\x06 \x01(\tR\x10detectedCategory\x12)\n" +
	"\x10keywords_matched\x18\a \x01(\bR\x0fkeywordsMatched\x12%\n" +
	"\x0emissing_fields\x18\b \x03(\tR\rmissingFields\x12\x1e\n" +
	"\n" +
	"confidence\x18\t \x01(\x02R\n" +
	"confidence\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"2\n" +
	"\x0eGetJobResponse\x12 \n" +
	"\x03job\x18\x01 \x01(\v2\x0e.verify.v1.JobR\x03job\"l\n" +
	"\x0fListJobsRequest\x12#\n" +
	"\ractivity_type\x18\x01 \x01(\tR\factivityType\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"6\n" +
	"\x10ListJobsResponse\x12\"\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0e.verify.v1.JobR\x04jobs\"n\n" +
	"\x11ExportJobsRequest\x12#\n" +
	"\ractivity_type\x18\x01 \x01(\tR\factivityType\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"(\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa4\x03\n" +
	"\x13VerificationService\x12[\n" +
	"\x10RecognizeReceipt\x12\".verify.v1.RecognizeReceiptRequest\x1a#.verify.v1.RecognizeReceiptResponse\x12a\n" +
	"\x12SubmitVerification\x12$.verify.v1.SubmitVerificationRequest\x1a%.verify.v1.SubmitVerificationResponse\x12=\n" +
	"\x06GetJob\x12\x18.verify.v1.GetJobRequest\x1a\x19.verify.v1.GetJobResponse\x12C\n" +
	"\bListJobs\x12\x1a.verify.v1.ListJobsRequest\x1a\x1b.verify.v1.ListJobsResponse\x12I\n" +
	"\n" +
	"ExportJobs\x12\x1c.verify.v1.ExportJobsRequest\x1a\x1d.verify.v1.ExportJobsResponseBFZDgithub.com/greenmap-app/greenmap-verify/gen/proto/verify/v1;verifypbb\x06proto3"

var (
	file_verify_v1_verify_proto_rawDescOnce sync.Once
	file_verify_v1_verify_proto_rawDescData []byte
)

func file_verify_v1_verify_proto_rawDescGZIP() []byte {
	file_verify_v1_verify_proto_rawDescOnce.Do(func() {
		file_verify_v1_verify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_verify_v1_verify_proto_rawDesc), len(file_verify_v1_verify_proto_rawDesc)))
	})
	return file_verify_v1_verify_proto_rawDescData
}

var file_verify_v1_verify_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_verify_v1_verify_proto_goTypes = []any{
	(*ExtractedFields)(nil),            // 0: verify.v1.ExtractedFields
	(*RecognizeReceiptRequest)(nil),    // 1: verify.v1.RecognizeReceiptRequest
	(*RecognizeReceiptResponse)(nil),   // 2: verify.v1.RecognizeReceiptResponse
	(*SubmitVerificationRequest)(nil),  // 3: verify.v1.SubmitVerificationRequest
	(*SubmitVerificationResponse)(nil), // 4: verify.v1.SubmitVerificationResponse
	(*Job)(nil),                        // 5: verify.v1.Job
	(*GetJobRequest)(nil),              // 6: verify.v1.GetJobRequest
	(*GetJobResponse)(nil),             // 7: verify.v1.GetJobResponse
	(*ListJobsRequest)(nil),            // 8: verify.v1.ListJobsRequest
	(*ListJobsResponse)(nil),           // 9: verify.v1.ListJobsResponse
	(*ExportJobsRequest)(nil),          // 10: verify.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),         // 11: verify.v1.ExportJobsResponse
}
var file_verify_v1_verify_proto_depIdxs = []int32{
	0,  // 0: verify.v1.RecognizeReceiptResponse.fields:type_name -> verify.v1.ExtractedFields
	5,  // 1: verify.v1.GetJobResponse.job:type_name -> verify.v1.Job
	5,  // 2: verify.v1.ListJobsResponse.jobs:type_name -> verify.v1.Job
	1,  // 3: verify.v1.VerificationService.RecognizeReceipt:input_type -> verify.v1.RecognizeReceiptRequest
	3,  // 4: verify.v1.VerificationService.SubmitVerification:input_type -> verify.v1.SubmitVerificationRequest
	6,  // 5: verify.v1.VerificationService.GetJob:input_type -> verify.v1.GetJobRequest
	8,  // 6: verify.v1.VerificationService.ListJobs:input_type -> verify.v1.ListJobsRequest
	10, // 7: verify.v1.VerificationService.ExportJobs:input_type -> verify.v1.ExportJobsRequest
	2,  // 8: verify.v1.VerificationService.RecognizeReceipt:output_type -> verify.v1.RecognizeReceiptResponse
	4,  // 9: verify.v1.VerificationService.SubmitVerification:output_type -> verify.v1.SubmitVerificationResponse
	7,  // 10: verify.v1.VerificationService.GetJob:output_type -> verify.v1.GetJobResponse
	9,  // 11: verify.v1.VerificationService.ListJobs:output_type -> verify.v1.ListJobsResponse
	11, // 12: verify.v1.VerificationService.ExportJobs:output_type -> verify.v1.ExportJobsResponse
	8,  // [8:13] is the sub-list for method output_type
	3,  // [3:8] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_verify_v1_verify_proto_init() }
func file_verify_v1_verify_proto_init() {
	if File_verify_v1_verify_proto != nil {
		return
	}
	file_verify_v1_verify_proto_msgTypes[1].OneofWrappers = []any{}
	file_verify_v1_verify_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_verify_v1_verify_proto_rawDesc), len(file_verify_v1_verify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_verify_v1_verify_proto_goTypes,
		DependencyIndexes: file_verify_v1_verify_proto_depIdxs,
		MessageInfos:      file_verify_v1_verify_proto_msgTypes,
	}.Build()
	File_verify_v1_verify_proto = out.File
	file_verify_v1_verify_proto_goTypes = nil
	file_verify_v1_verify_proto_depIdxs = nil
}
