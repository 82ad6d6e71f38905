package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tablebook/booking-app/services"
	"github.com/tablebook/booking-app/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

func parseTableID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("table_id"), 10, 32)
	return uint(id), err
}

// CreateTable -> staff menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=3"`
		Capacity int    `json:"capacity" binding:"required,gte=2,lte=20"`
		Status   string `json:"status" binding:"omitempty,oneof=AVAILABLE BOOKED INACTIVE"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.CreateTable(req.Name, req.Capacity, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.GetAllTables()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := parseTableID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.FindTableByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> partial update data meja (hanya saat AVAILABLE)
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := parseTableID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name     *string `json:"name" binding:"omitempty,min=3"`
		Capacity *int    `json:"capacity" binding:"omitempty,gte=2,lte=20"`
		Status   *string `json:"status" binding:"omitempty,oneof=AVAILABLE INACTIVE"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.UpdateTable(id, services.TableUpdate{
		Name:     req.Name,
		Capacity: req.Capacity,
		Status:   req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja (hanya saat AVAILABLE)
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := parseTableID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.FindTableByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := tc.Tables.DeleteTable(table); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}
