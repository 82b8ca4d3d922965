/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets.
  * Each bucket contains only one type of object.
  * It has a primary key and may possess secondary indexes (1:1 or 1:N).
  * Sequences generate ordered primary keys.

Do not use much reflection magic. Prefer static, type safe wrappers around a
bucket, even if it takes a bit of boilerplate.
*/
package orm
