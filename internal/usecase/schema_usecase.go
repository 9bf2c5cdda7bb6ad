package usecase

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/schema"
)

// SchemaUsecase exposes the static table descriptions to clients building insert forms.
type SchemaUsecase interface {
	ListTables() *dto.SchemaListResponse
	GetTable(name string) (*dto.SchemaResponse, error)
}

type schemaUsecase struct{}

func NewSchemaUsecase() SchemaUsecase {
	return &schemaUsecase{}
}

func (u *schemaUsecase) ListTables() *dto.SchemaListResponse {
	return &dto.SchemaListResponse{Tables: schema.Names()}
}

func (u *schemaUsecase) GetTable(name string) (*dto.SchemaResponse, error) {
	table, err := schema.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &dto.SchemaResponse{
		Table:  table,
		Insert: table.InsertProjection(),
		Update: table.UpdateProjection(),
	}, nil
}
