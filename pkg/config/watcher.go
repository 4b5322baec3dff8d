package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// AnimationWatcher 监视磁盘上的动画配置覆盖文件并热重载
//
// 仅用于调参：通过 -config 指定磁盘文件后，每次保存文件都会在 Updates
// 通道上推送一份重新加载的配置。动画场景在 Update 中非阻塞地取走最新值，
// 渲染循环本身保持单线程。
type AnimationWatcher struct {
	watcher *fsnotify.Watcher
	path    string

	// Updates 推送热重载后的配置，缓冲为 1，始终保留最新一份
	Updates chan *AnimationConfig

	done chan struct{}
}

// WatchAnimationConfig 开始监视指定路径的动画配置文件
func WatchAnimationConfig(path string) (*AnimationWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// 监视目录而不是文件本身：编辑器保存时常用 rename+create，
	// 只监视文件会在第一次保存后失效
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	aw := &AnimationWatcher{
		watcher: fw,
		path:    filepath.Clean(path),
		Updates: make(chan *AnimationConfig, 1),
		done:    make(chan struct{}),
	}

	go aw.run()
	log.Printf("[AnimationWatcher] Watching '%s' for changes", path)
	return aw, nil
}

func (aw *AnimationWatcher) run() {
	for {
		select {
		case <-aw.done:
			return
		case event, ok := <-aw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != aw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := LoadAnimationConfigFile(aw.path)
			if err != nil {
				log.Printf("[AnimationWatcher] Reload failed: %v", err)
				continue
			}
			log.Printf("[AnimationWatcher] Reloaded '%s'", aw.path)

			// 丢弃未消费的旧配置，只保留最新的
			select {
			case <-aw.Updates:
			default:
			}
			aw.Updates <- cfg

		case err, ok := <-aw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[AnimationWatcher] Watch error: %v", err)
		}
	}
}

// Close 停止监视
func (aw *AnimationWatcher) Close() error {
	close(aw.done)
	return aw.watcher.Close()
}
