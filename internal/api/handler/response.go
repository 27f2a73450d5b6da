package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/kleandaily/klean-daily-api/internal/usecases/commissioning"
	"github.com/kleandaily/klean-daily-api/pkg/apiErrors"
	"github.com/kleandaily/klean-daily-api/pkg/log"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// codedError é implementado pelos erros de usecase que carregam um código da API
type codedError interface {
	error
	APICode() string
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUsecaseError traduz o erro do usecase no payload padronizado.
// Só erros de validação expõem a mensagem original ao cliente.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var coded codedError
	if !errors.As(err, &coded) {
		log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
		return
	}

	if commissioning.IsValidationError(err) {
		log.ForContext(r.Context()).WithError(err).Warn("Parâmetros inválidos")
		apiErrors.WriteError(w, coded.APICode(), coded.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
	apiErrors.WriteError(w, coded.APICode(), fallbackMessage, nil)
}
