package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/pkg/logger"
)

type HashTask struct {
	Path string
}

type HashResult struct {
	Path  string
	Hash  uint64
	Size  int64
	Error error
}

type HashPool struct {
	fs      afero.Fs
	workers int
	tasks   chan HashTask
	results chan HashResult
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewHashPool(fs afero.Fs, workers int) *HashPool {
	if workers <= 0 {
		workers = internal.DefaultWorkers
	}
	logger.Get().Debug().Msgf("创建哈希计算池，工作线程数: %d", workers)
	return &HashPool{
		fs:      fs,
		workers: workers,
		tasks:   make(chan HashTask, internal.DefaultBufferSize),
		results: make(chan HashResult, internal.DefaultBufferSize),
	}
}

func (p *HashPool) Start() error {
	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return err
	}
	return p.start(pool)
}

// start 向 pool 提交 worker；任一提交失败时关闭整个 HashPool，已提交的 worker 会退出
func (p *HashPool) start(pool *ants.Pool) error {
	p.pool = pool

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			p.Close()
			return err
		}
	}
	return nil
}

func (p *HashPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		hash, size, err := CalculateHash(p.fs, task.Path)
		p.results <- HashResult{
			Path:  task.Path,
			Hash:  hash,
			Size:  size,
			Error: err,
		}
	}
}

func (p *HashPool) AddTask(task HashTask) {
	p.tasks <- task
}

func (p *HashPool) Results() <-chan HashResult {
	return p.results
}

// Close 停止接收任务，等待所有 worker 退出后关闭结果通道
func (p *HashPool) Close() {
	close(p.tasks)
	p.wg.Wait()

	if p.pool != nil {
		p.pool.Release()
	}

	close(p.results)
}

// HashAll 并发计算一组文件的哈希，结果按输入顺序返回
func HashAll(fs afero.Fs, paths []string, workers int) ([]HashResult, error) {
	pool := NewHashPool(fs, workers)
	if err := pool.Start(); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(paths))
	for i, path := range paths {
		index[path] = i
	}

	results := make([]HashResult, len(paths))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range pool.Results() {
			results[index[res.Path]] = res
		}
	}()

	for _, path := range paths {
		pool.AddTask(HashTask{Path: path})
	}
	pool.Close()
	<-done

	return results, nil
}
