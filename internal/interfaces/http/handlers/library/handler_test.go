package library

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/testutil"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type mockCreateUC struct {
	got    usecases.CreateDocumentCommand
	result *dto.DocumentDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateDocumentCommand) (*dto.DocumentDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.DocumentDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetDocumentQuery) (*dto.DocumentDTO, error) {
	return m.result, m.err
}

type mockListUC struct {
	got    usecases.ListDocumentsQuery
	result *usecases.ListDocumentsResult
	err    error
}

func (m *mockListUC) Execute(_ context.Context, q usecases.ListDocumentsQuery) (*usecases.ListDocumentsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockUpdateUC struct {
	got    usecases.UpdateDocumentCommand
	result *dto.DocumentDTO
	err    error
}

func (m *mockUpdateUC) Execute(_ context.Context, cmd usecases.UpdateDocumentCommand) (*dto.DocumentDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteUC struct {
	err error
}

func (m *mockDeleteUC) Execute(_ context.Context, _ usecases.DeleteDocumentCommand) error {
	return m.err
}

type mockAddAttachmentUC struct {
	got    usecases.AddAttachmentCommand
	result *dto.AttachmentDTO
	err    error
}

func (m *mockAddAttachmentUC) Execute(_ context.Context, cmd usecases.AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type testDeps struct {
	create *mockCreateUC
	get    *mockGetUC
	list   *mockListUC
	update *mockUpdateUC
	del    *mockDeleteUC
	attach *mockAddAttachmentUC
}

func newTestHandler() (*Handler, *testDeps) {
	d := &testDeps{
		create: &mockCreateUC{},
		get:    &mockGetUC{},
		list:   &mockListUC{},
		update: &mockUpdateUC{},
		del:    &mockDeleteUC{},
		attach: &mockAddAttachmentUC{},
	}
	return NewHandler(d.create, d.get, d.list, d.update, d.del, d.attach, testutil.NewMockLogger()), d
}

func TestHandler_CreateDocument(t *testing.T) {
	h, d := newTestHandler()
	d.create.result = &dto.DocumentDTO{ID: 1, Title: "E42 recovery", ContentHTML: "<h1>E42</h1>"}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/library", CreateDocumentRequest{
		Title:     "E42 recovery",
		Content:   "# E42",
		FaultCode: "E42",
		Tags:      []string{"servo"},
	})
	testutil.SetPrincipal(c, 1, 2, authorization.RoleServiceEngineer)
	h.CreateDocument(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "E42", d.create.got.FaultCode)
	assert.Equal(t, []string{"servo"}, d.create.got.Tags)
}

func TestHandler_CreateDocument_EndSideForbidden(t *testing.T) {
	h, d := newTestHandler()
	d.create.err = errors.NewForbiddenError("permission denied")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/library", CreateDocumentRequest{Title: "t", Content: "c"})
	testutil.SetPrincipal(c, 1, 5, authorization.RoleEndAdmin)
	h.CreateDocument(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateDocument_MissingTitle(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/library", CreateDocumentRequest{Content: "c"})
	testutil.SetPrincipal(c, 1, 2, authorization.RoleServiceAdmin)
	h.CreateDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListDocuments_Filters(t *testing.T) {
	h, d := newTestHandler()
	d.list.result = &usecases.ListDocumentsResult{Documents: []dto.DocumentListItemDTO{{ID: 1}}, Total: 1}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/library", nil)
	testutil.SetQueryParams(c, map[string]string{"keyword": "servo", "category": "troubleshooting", "fault_code": "E42"})
	testutil.SetPrincipal(c, 1, 5, authorization.RoleEndEngineer)
	h.ListDocuments(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "servo", d.list.got.Keyword)
	assert.Equal(t, "troubleshooting", d.list.got.Category)
	assert.Equal(t, "E42", d.list.got.FaultCode)
}

func TestHandler_UpdateDocument_PartialFields(t *testing.T) {
	h, d := newTestHandler()
	d.update.result = &dto.DocumentDTO{ID: 3}

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/library/3", map[string]string{"category": "manual"})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetPrincipal(c, 1, 2, authorization.RoleServiceAdmin)
	h.UpdateDocument(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, d.update.got.Category)
	assert.Equal(t, "manual", *d.update.got.Category)
	assert.Nil(t, d.update.got.Title)
	assert.Nil(t, d.update.got.Tags)
}

func TestHandler_GetDocument_NotFound(t *testing.T) {
	h, d := newTestHandler()
	d.get.err = errors.NewNotFoundError("document not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/library/3", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetPrincipal(c, 1, 5, authorization.RoleEndEngineer)
	h.GetDocument(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteDocument(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/library/3", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetPrincipal(c, 1, 2, authorization.RoleServiceAdmin)
	h.DeleteDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddAttachment(t *testing.T) {
	h, d := newTestHandler()
	d.attach.result = &dto.AttachmentDTO{ID: 1, FileID: "0f8fad5b-d9cb-469f-a165-70867728950e"}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/library/3/attachments",
		AddAttachmentRequest{FileID: "0f8fad5b-d9cb-469f-a165-70867728950e"})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetPrincipal(c, 1, 2, authorization.RoleServiceEngineer)
	h.AddAttachment(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), d.attach.got.DocumentID)
}
