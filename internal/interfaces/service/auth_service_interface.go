// Package service
package service

type AuthServiceInterface interface {
	// OperatorLogin 运营人员登录, 校验口令并签发JWT令牌
	OperatorLogin(req *RequestOperatorLogin) *ApiResponse[ResponseOperatorLogin]
}

type RequestOperatorLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseOperatorLogin struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
