// Package school
package school

type Program struct {
	Name string `json:"name"`
}

// Class 班级只引用已存在的用户, 不拥有它们,
// 成员在所有用户构建完成后的第二遍链接中补齐
type Class struct {
	Name    string  `json:"name"`
	Members []*User `json:"-"`
}
