// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    embed.FS
	dataFS      embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data embed.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// fsFor 根据路径前缀选择对应的 embed.FS
// 路径必须以 "assets/" 或 "data/" 开头
func fsFor(path string) (*embed.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// embed.FS 使用正斜杠路径
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return &assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return &dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开嵌入文件
func Open(path string) (fs.File, error) {
	efs, p, err := fsFor(path)
	if err != nil {
		return nil, err
	}
	return efs.Open(p)
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	efs, p, err := fsFor(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(efs, p)
}

// Exists 检查文件是否存在于 embed.FS 中
func Exists(path string) bool {
	efs, p, err := fsFor(path)
	if err != nil {
		return false
	}
	f, err := efs.Open(p)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
