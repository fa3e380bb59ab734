package controllers

import (
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/requests"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// UserController passes user administration through to the DB API.
type UserController struct {
	Log   *zap.Logger
	DBAPI contracts.DBAPIClient
}

func NewUserController(logger *zap.Logger, dbapiClient contracts.DBAPIClient) *UserController {
	return &UserController{
		Log:   logger,
		DBAPI: dbapiClient,
	}
}

func (ctrl *UserController) List(w http.ResponseWriter, r *http.Request) {
	result, err := ctrl.DBAPI.ListUsers(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListUsersSuccessMessage, result)
}

func (ctrl *UserController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateUserRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.DBAPI.CreateUser(r.Context(), *request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, result)
}
