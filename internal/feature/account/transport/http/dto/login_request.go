package dto

// LoginReq は/api/loginエンドポイントのリクエストボディを表します。
// 未入力の項目は認証失敗として扱うため、バインディングでは検証しません。
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
