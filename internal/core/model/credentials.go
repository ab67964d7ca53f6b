package model

// Credentials 待验证的一组凭据 (单次尝试的输入)
// Target 为 "host[:port]"，端口缺省时由插件补全
// Username/Password 允许为空字符串，空值本身也是要测试的凭据
type Credentials struct {
	Target   string `json:"target"`
	Username string `json:"username"`
	Password string `json:"password"`
}
