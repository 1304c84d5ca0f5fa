package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MimeTypePDF is the only accepted upload type
const MimeTypePDF = "application/pdf"

// PDFFile is a PDF stored inline as base64. StorageURL is set when the
// file was mirrored to object storage.
type PDFFile struct {
	Data       string `json:"data,omitempty" bson:"data"`
	MimeType   string `json:"mimeType" bson:"mimeType" example:"application/pdf"`
	Size       int64  `json:"size" bson:"size" example:"48213"`
	StorageURL string `json:"storageUrl,omitempty" bson:"storageUrl,omitempty"`
}

// JobDescription represents a document in the jobdescriptions collection
// @Description Uploaded job description
type JobDescription struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" swaggertype:"string"`
	Title      string             `json:"title" bson:"title" example:"Backend Engineer"`
	Content    string             `json:"content" bson:"content"`
	PDFFile    PDFFile            `json:"pdfFile" bson:"pdfFile"`
	UploadedBy primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy" swaggertype:"string"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// ConsultantProfile represents a document in the consultantprofiles collection
// @Description Uploaded consultant resume
type ConsultantProfile struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" swaggertype:"string"`
	Name       string             `json:"name" bson:"name" example:"Jane Doe"`
	ResumeText string             `json:"resumeText" bson:"resumeText"`
	PDFFile    PDFFile            `json:"pdfFile" bson:"pdfFile"`
	UploadedBy primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy" swaggertype:"string"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// JobSummary is the {title, createdAt} projection of a JD
type JobSummary struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	CreatedAt *time.Time         `bson:"createdAt,omitempty"`
}

// ProfileRef is the {name} projection of a consultant profile
type ProfileRef struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

// PDFFileInput is the pdfFile part of an upload request
type PDFFileInput struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType" example:"application/pdf"`
	Size     int64  `json:"size" example:"48213"`
}

// UploadJobDescriptionRequest represents a JD upload
// @Description Job description upload (base64 PDF)
type UploadJobDescriptionRequest struct {
	Title   string        `json:"title" example:"Backend Engineer"`
	PDFFile *PDFFileInput `json:"pdfFile"`
}

// UploadProfileRequest represents a consultant profile upload
// @Description Consultant profile upload (base64 PDF)
type UploadProfileRequest struct {
	Name    string        `json:"name" example:"Jane Doe"`
	PDFFile *PDFFileInput `json:"pdfFile"`
}

// DeleteByNameRequest deletes a JD (by title) or a profile (by name)
type DeleteByNameRequest struct {
	Name string `json:"name" example:"Backend Engineer"`
}
