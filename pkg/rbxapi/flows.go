package rbxapi

import (
	"context"
)

// CodeInfo describes a freshly minted access code
type CodeInfo struct {
	AccessCode     string `json:"access_code"`
	ExpiresInHours int    `json:"expires_in_hours"`
	MaxUses        int    `json:"max_uses"`
	GeneratedAt    any    `json:"generated_at"`
}

// FlowResult is the outcome of a composite flow. Failures are reported as a
// value instead of an error so callers get one shape either way.
type FlowResult struct {
	Success      bool           `json:"success"`
	CodeInfo     *CodeInfo      `json:"code_info,omitempty"`
	Verification *VerifyResult  `json:"verification,omitempty"`
	UserInfo     map[string]any `json:"user_info,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// failure builds a FlowResult from an error, preferring the remote message
func failure(err error, fallback string) FlowResult {
	message := fallback
	if err != nil {
		message = err.Error()
	}
	return FlowResult{Success: false, Error: message}
}

// GenerateAndGetUserInfo chains code generation with the user-info lookup
func (c *Client) GenerateAndGetUserInfo(ctx context.Context, userID string) FlowResult {
	generateResult, err := c.GenerateAccessCode(ctx, userID)
	if err != nil {
		return failure(err, "Error generando código")
	}

	if !generateResult.Success {
		if generateResult.Error != "" {
			return FlowResult{Success: false, Error: generateResult.Error}
		}
		return FlowResult{Success: false, Error: "Error generando código"}
	}

	userInfo, err := c.GetUserInfo(ctx, generateResult.AccessCode)
	if err != nil {
		return failure(err, "Error obteniendo información del usuario")
	}

	return FlowResult{
		Success: true,
		CodeInfo: &CodeInfo{
			AccessCode:     generateResult.AccessCode,
			ExpiresInHours: 24,
			MaxUses:        50,
			GeneratedAt:    generateResult.GeneratedAt,
		},
		UserInfo: userInfo,
	}
}

// VerifyAndGetUserInfo chains code verification with the user-info lookup
func (c *Client) VerifyAndGetUserInfo(ctx context.Context, accessCode string) FlowResult {
	verifyResult, err := c.VerifyAccessCode(ctx, accessCode)
	if err != nil {
		return failure(err, "Código inválido")
	}

	if !verifyResult.Success {
		if verifyResult.Error != "" {
			return FlowResult{Success: false, Error: verifyResult.Error}
		}
		return FlowResult{Success: false, Error: "Código inválido"}
	}

	userInfo, err := c.GetUserInfo(ctx, accessCode)
	if err != nil {
		return failure(err, "Error obteniendo información del usuario")
	}

	return FlowResult{
		Success:      true,
		Verification: verifyResult,
		UserInfo:     userInfo,
	}
}
