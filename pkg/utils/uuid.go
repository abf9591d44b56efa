package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBatchID gera o identificador de um lote de importação
func GenerateBatchID() (string, error) {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return "", err
	}

	return "IMP-" + id, nil
}

// GenerateVerificationCode gera o código numérico de 6 dígitos enviado por email
func GenerateVerificationCode() (string, error) {
	return gonanoid.Generate("0123456789", 6)
}
