package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"store-console/internal/service"
	resp "store-console/internal/transport/http/response"
)

type StoreHandler struct {
	svc *service.StoreService
	log *zap.Logger
}

func NewStoreHandler(svc *service.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{svc: svc, log: log}
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.svc.List()
	if err != nil {
		h.log.Error("list stores failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}
	// 历史口径：列表返回裸数组
	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) Get(c *gin.Context) {
	st, err := h.svc.Get(c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			resp.StoreFail(c, "Store not found")
			return
		}
		h.log.Error("get store failed", zap.Error(err))
		resp.StoreFail(c, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "store": st})
}

func (h *StoreHandler) Add(c *gin.Context) {
	var in service.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.StoreFail(c, "All fields are required")
		return
	}

	st, err := h.svc.Add(in)
	if err != nil {
		h.storeFail(c, "add store failed", err, "Error adding store")
		return
	}
	resp.StoreOK(c, "Store added successfully!", gin.H{"id": st.Code})
}

func (h *StoreHandler) Update(c *gin.Context) {
	var in service.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.StoreFail(c, "All fields are required")
		return
	}

	if err := h.svc.Update(c.Param("code"), in); err != nil {
		h.storeFail(c, "update store failed", err, "Error updating store")
		return
	}
	resp.StoreOK(c, "Store updated successfully!", nil)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("code")); err != nil {
		h.storeFail(c, "delete store failed", err, "Error deleting store")
		return
	}
	resp.StoreOK(c, "Store deleted successfully!", nil)
}

// storeFail stores 族的业务失败都走 200 + success:false（老客户端兼容）
func (h *StoreHandler) storeFail(c *gin.Context, what string, err error, prefix string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.StoreFail(c, ve.Message)
	case errors.Is(err, service.ErrDuplicateCode):
		resp.StoreFail(c, "Store code already exists")
	case errors.Is(err, service.ErrNotFound):
		resp.StoreFail(c, "Store not found")
	default:
		h.log.Error(what, zap.Error(err))
		resp.StoreFail(c, prefix+": server error")
	}
}

func (h *StoreHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.StoreFail(c, "CSV file is required")
		return
	}
	f, err := file.Open()
	if err != nil {
		resp.StoreFail(c, "CSV file is required")
		return
	}
	defer f.Close()

	rows, err := parseStoreCSV(f)
	if err != nil {
		resp.StoreFail(c, "Invalid CSV file")
		return
	}

	results, importErrs := h.svc.BulkImport(rows)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"errors":  importErrs,
	})
}

// parseStoreCSV 首行为表头；列名大小写、下划线不敏感（storeType/store_type 皆可）
func parseStoreCSV(r io.Reader) ([]service.StoreInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	idx := map[string]int{}
	for i, col := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(col), "_", ""))
		idx[key] = i
	}
	pick := func(rec []string, key string) string {
		i, ok := idx[key]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []service.StoreInput
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, service.StoreInput{
			Code:        pick(rec, "code"),
			Designation: pick(rec, "designation"),
			Manager:     pick(rec, "manager"),
			Email:       pick(rec, "email"),
			Mobile:      pick(rec, "mobile"),
			StoreType:   pick(rec, "storetype"),
		})
	}
	return rows, nil
}
