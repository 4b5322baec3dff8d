//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 只能嵌入包目录下的文件，构建前需把项目根目录的
// assets/ 和 data/ 复制到此目录。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/animation.yaml data/sampler.yaml data/quality.yaml
var dataFS embed.FS
